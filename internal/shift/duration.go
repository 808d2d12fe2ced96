package shift

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesToDisplay renders minutes as zero-padded HH:MM. Hours are unbounded
// and may exceed 24. Negative input clamps to "00:00" instead of failing so
// a bad timestamp can only under-report a duration, never break the flow.
func MinutesToDisplay(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// DisplayToMinutes parses an HH:MM display string back into minutes.
// Malformed or empty input yields 0.
func DisplayToMinutes(s string) int {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil || mins < 0 {
		return 0
	}

	return hours*60 + mins
}

// ElapsedMinutes returns the whole minutes between start and end. A missing
// endpoint or an end before start yields 0 (fail-to-zero policy).
func ElapsedMinutes(start, end *time.Time) int {
	if start == nil || end == nil {
		return 0
	}
	if end.Before(*start) {
		return 0
	}
	return int(end.Sub(*start).Minutes())
}
