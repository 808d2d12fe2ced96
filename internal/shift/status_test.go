package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateStatus(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name     string
		breakDur string
		workDur  string
		want     Status
	}{
		{"full day within break budget", "00:40", "08:20", StatusComplete},
		{"no break at all", "00:00", "08:00", StatusComplete},
		{"long break trumps enough work", "01:10", "09:00", StatusOverBreak},
		{"break exactly at the limit", "00:50", "08:00", StatusComplete},
		{"one minute over the limit", "00:51", "08:00", StatusOverBreak},
		{"short day", "00:30", "06:00", StatusIncomplete},
		{"short day with long break", "01:30", "04:00", StatusOverBreak},
		{"malformed inputs fall to incomplete", "n/a", "", StatusIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateStatus(tt.breakDur, tt.workDur, policy))
		})
	}
}

func TestEvaluateStatusIsPure(t *testing.T) {
	policy := Policy{StandardWorkMinutes: 540, MaxBreakMinutes: 60}
	first := EvaluateStatus("00:45", "09:10", policy)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, EvaluateStatus("00:45", "09:10", policy))
	}
}
