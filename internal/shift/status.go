package shift

// Status classifies a finished day once the employee logs out.
type Status string

const (
	StatusComplete   Status = "COMPLETE"
	StatusIncomplete Status = "INCOMPLETE"
	StatusOverBreak  Status = "OVER_BREAK"
)

// EvaluateStatus maps the day's break and work durations (HH:MM display
// strings) to a completion status. Total and pure: any input, including
// malformed strings, yields a status. A day with enough work but too much
// break is flagged OVER_BREAK, not COMPLETE.
func EvaluateStatus(breakDuration, workDuration string, p Policy) Status {
	breakMinutes := DisplayToMinutes(breakDuration)
	workMinutes := DisplayToMinutes(workDuration)

	if workMinutes >= p.StandardWorkMinutes && breakMinutes <= p.MaxBreakMinutes {
		return StatusComplete
	}
	if breakMinutes > p.MaxBreakMinutes {
		return StatusOverBreak
	}
	return StatusIncomplete
}
