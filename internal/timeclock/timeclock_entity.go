package timeclock

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRecord is the per-employee, per-day attendance row. The four raw
// timestamps are the source of truth; BreakDuration, TotalWorkTime, Status
// and Overtime are derived from them at break end / logout and never set
// independently.
type ShiftRecord struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID      `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID    uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;index"`
	WorkDate      time.Time      `gorm:"column:work_date;type:date;not null;uniqueIndex:uq_shift_record_day,composite:company_id,employee_id"`
	LoginAt       time.Time      `gorm:"column:login_at;type:timestamptz;not null"`
	LogoutAt      *time.Time     `gorm:"column:logout_at;type:timestamptz"`
	BreakStartAt  *time.Time     `gorm:"column:break_start_at;type:timestamptz"`
	BreakEndAt    *time.Time     `gorm:"column:break_end_at;type:timestamptz"`
	BreakDuration string         `gorm:"column:break_duration;type:varchar(10);not null;default:'00:00'"`
	TotalWorkTime string         `gorm:"column:total_work_time;type:varchar(10)"`
	Status        string         `gorm:"column:status;type:varchar(20)"`
	Overtime      string         `gorm:"column:overtime;type:varchar(10)"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index"`
	Employee      *EmployeeRef   `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (ShiftRecord) TableName() string {
	return "shift_records"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

// State is the live position of a record inside the day, derived from the
// raw timestamps and never stored.
type State string

const (
	StateWorking   State = "WORKING"
	StateOnBreak   State = "ON_BREAK"
	StateLoggedOut State = "LOGGED_OUT"
)

func (r *ShiftRecord) State() State {
	if r.LogoutAt != nil {
		return StateLoggedOut
	}
	if r.HasOpenBreak() {
		return StateOnBreak
	}
	return StateWorking
}

func (r *ShiftRecord) HasOpenBreak() bool {
	return r.BreakStartAt != nil && r.BreakEndAt == nil
}

func (r *ShiftRecord) BreakTaken() bool {
	return r.BreakStartAt != nil && r.BreakEndAt != nil
}
