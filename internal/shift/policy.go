package shift

// Policy carries the per-deployment thresholds the evaluator and overtime
// calculator work against. Values are minutes.
type Policy struct {
	StandardWorkMinutes int
	MaxBreakMinutes     int
}

// DefaultPolicy is an 8-hour standard day with at most 50 minutes of break.
func DefaultPolicy() Policy {
	return Policy{
		StandardWorkMinutes: 480,
		MaxBreakMinutes:     50,
	}
}
