package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOvertime(t *testing.T) {
	policy := DefaultPolicy()
	login := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("exact standard day has no overtime", func(t *testing.T) {
		logout := login.Add(9 * time.Hour) // 8h work + 40m break + 20m slack
		assert.Equal(t, 0.0, CalculateOvertime(&login, &logout, 60, policy))
	})

	t.Run("ninety minutes over", func(t *testing.T) {
		logout := login.Add(10 * time.Hour)
		assert.Equal(t, 1.5, CalculateOvertime(&login, &logout, 30, policy))
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		logout := login.Add(8*time.Hour + 50*time.Minute)
		// 530 - 30 - 480 = 20 minutes = 0.33 hours
		assert.Equal(t, 0.33, CalculateOvertime(&login, &logout, 30, policy))
	})

	t.Run("never negative", func(t *testing.T) {
		logout := login.Add(4 * time.Hour)
		assert.Equal(t, 0.0, CalculateOvertime(&login, &logout, 30, policy))

		// logout before login clamps instead of going negative
		early := login.Add(-2 * time.Hour)
		assert.Equal(t, 0.0, CalculateOvertime(&login, &early, 0, policy))

		assert.Equal(t, 0.0, CalculateOvertime(nil, &logout, 0, policy))
	})
}
