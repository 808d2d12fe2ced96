package timeclock

import (
	"context"
	"database/sql"
	"time"

	"go-timeclock/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timeclock_repo.go -destination=mock/timeclock_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *ShiftRecord) error
	FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*ShiftRecord, error)
	ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]ShiftRecord, error)
	ListByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time, employeeIDs []string) ([]ShiftRecord, error)
	ListByCompanyAndEmployee(ctx context.Context, companyID, employeeID string) ([]ShiftRecord, error)
	ListByCompany(ctx context.Context, companyID string) ([]ShiftRecord, error)
	Update(ctx context.Context, r *ShiftRecord) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, rec *ShiftRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*ShiftRecord, error) {
	var rec ShiftRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("work_date = ?", date.Format("2006-01-02")).
		First(&rec).Error
	return &rec, err
}

func (r *repository) ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]ShiftRecord, error) {
	var rows []ShiftRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("work_date = ?", date.Format("2006-01-02")).
		Preload("Employee").
		Order("login_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time, employeeIDs []string) ([]ShiftRecord, error) {
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("work_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02"))
	if len(employeeIDs) > 0 {
		q = q.Where("employee_id IN ?", employeeIDs)
	}

	var rows []ShiftRecord
	err := q.Preload("Employee").
		Order("work_date ASC, login_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListByCompanyAndEmployee(ctx context.Context, companyID, employeeID string) ([]ShiftRecord, error) {
	var rows []ShiftRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("work_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListByCompany(ctx context.Context, companyID string) ([]ShiftRecord, error) {
	var rows []ShiftRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		Order("work_date DESC, login_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, rec *ShiftRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}
