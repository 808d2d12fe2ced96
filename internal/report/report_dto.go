package report

import (
	"time"

	"go-timeclock/internal/timeclock"
)

// EmployeeDayRow is the per-employee projection the dashboard and the
// export sink consume. Read-only: building it never mutates a record.
type EmployeeDayRow struct {
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	WorkDate      string `json:"work_date"`
	State         string `json:"state"`
	LoginAt       string `json:"login_at"`
	LogoutAt      string `json:"logout_at,omitempty"`
	BreakDuration string `json:"break_duration"`
	TotalWorkTime string `json:"total_work_time,omitempty"`
	Status        string `json:"status,omitempty"`
	Overtime      string `json:"overtime,omitempty"`
}

type DailySummary struct {
	Date           string           `json:"date"`
	ActiveCount    int              `json:"active_count"`
	OnBreakCount   int              `json:"on_break_count"`
	CompletedCount int              `json:"completed_count"`
	Rows           []EmployeeDayRow `json:"rows"`
}

func mapToRow(r timeclock.ShiftRecord) EmployeeDayRow {
	row := EmployeeDayRow{
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
		row.EmployeeName = r.Employee.FullName
	}
	if r.LogoutAt != nil {
		row.LogoutAt = r.LogoutAt.Format(time.RFC3339)
	}
	return row
}
