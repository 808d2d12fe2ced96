package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMinutesToDisplay(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToDisplay(0))
	assert.Equal(t, "00:40", MinutesToDisplay(40))
	assert.Equal(t, "08:20", MinutesToDisplay(500))
	assert.Equal(t, "26:03", MinutesToDisplay(26*60+3), "hours are unbounded")
	assert.Equal(t, "00:00", MinutesToDisplay(-15), "negative clamps to zero")
}

func TestDisplayToMinutes(t *testing.T) {
	assert.Equal(t, 500, DisplayToMinutes("08:20"))
	assert.Equal(t, 40, DisplayToMinutes("00:40"))
	assert.Equal(t, 0, DisplayToMinutes(""))
	assert.Equal(t, 0, DisplayToMinutes("garbage"))
	assert.Equal(t, 0, DisplayToMinutes("8h20m"))
	assert.Equal(t, 0, DisplayToMinutes("-1:30"))
}

func TestDisplayRoundTrip(t *testing.T) {
	// MinutesToDisplay(DisplayToMinutes(s)) == s for well-formed HH:MM
	// strings with minutes < 60.
	for _, s := range []string{"00:00", "00:01", "00:59", "01:00", "08:20", "09:15", "23:59", "48:30"} {
		assert.Equal(t, s, MinutesToDisplay(DisplayToMinutes(s)))
	}
}

func TestElapsedMinutes(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(8*time.Hour + 20*time.Minute)

	assert.Equal(t, 500, ElapsedMinutes(&start, &end))
	assert.Equal(t, 0, ElapsedMinutes(nil, &end))
	assert.Equal(t, 0, ElapsedMinutes(&start, nil))
	assert.Equal(t, 0, ElapsedMinutes(&end, &start), "end before start clamps to zero")
}
