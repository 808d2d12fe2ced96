package events

import "time"

const ShiftTransitionsTopic = "shift.transitions.v1"

const (
	ShiftLoggedIn   = "shift.logged_in"
	ShiftBreakStart = "shift.break_started"
	ShiftBreakEnd   = "shift.break_ended"
	ShiftLoggedOut  = "shift.logged_out"
)

// ShiftTransitionEvent is emitted for every accepted state-machine
// transition. Consumers use it to refresh the live dashboard summary.
type ShiftTransitionEvent struct {
	EventType  string    `json:"event_type"`
	RecordID   string    `json:"record_id"`
	EmployeeID string    `json:"employee_id"`
	CompanyID  string    `json:"company_id"`
	WorkDate   string    `json:"work_date"`
	OccurredAt time.Time `json:"occurred_at"`
}
