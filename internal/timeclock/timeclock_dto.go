package timeclock

import "time"

type ShiftResponse struct {
	ID            string  `json:"id"`
	CompanyID     string  `json:"company_id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	WorkDate      string  `json:"work_date"`
	State         string  `json:"state"`
	LoginAt       string  `json:"login_at"`
	LogoutAt      *string `json:"logout_at,omitempty"`
	BreakStartAt  *string `json:"break_start_at,omitempty"`
	BreakEndAt    *string `json:"break_end_at,omitempty"`
	BreakDuration string  `json:"break_duration"`
	TotalWorkTime string  `json:"total_work_time,omitempty"`
	Status        string  `json:"status,omitempty"`
	Overtime      string  `json:"overtime,omitempty"`

	// AlreadyLoggedIn reports an idempotent re-login; the record is untouched.
	AlreadyLoggedIn bool `json:"already_logged_in,omitempty"`
}

func mapToResponse(r ShiftRecord) ShiftResponse {
	resp := ShiftResponse{
		ID:            r.ID.String(),
		CompanyID:     r.CompanyID.String(),
		EmployeeID:    r.EmployeeID.String(),
		WorkDate:      r.WorkDate.Format("2006-01-02"),
		State:         string(r.State()),
		LoginAt:       r.LoginAt.Format(time.RFC3339),
		BreakDuration: r.BreakDuration,
		TotalWorkTime: r.TotalWorkTime,
		Status:        r.Status,
		Overtime:      r.Overtime,
	}
	if r.Employee != nil {
		resp.EmployeeName = r.Employee.FullName
	}
	resp.LogoutAt = formatOptional(r.LogoutAt)
	resp.BreakStartAt = formatOptional(r.BreakStartAt)
	resp.BreakEndAt = formatOptional(r.BreakEndAt)
	return resp
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}
