package shift

import (
	"math"
	"time"
)

// CalculateOvertime returns the hours worked beyond the standard day,
// rounded to 2 decimals. Never negative: a short day, a missing endpoint or
// a logout before login all clamp to 0.
func CalculateOvertime(login, logout *time.Time, breakMinutes int, p Policy) float64 {
	worked := ElapsedMinutes(login, logout) - breakMinutes
	overtime := worked - p.StandardWorkMinutes
	if overtime <= 0 {
		return 0
	}
	return math.Round(float64(overtime)/60*100) / 100
}
