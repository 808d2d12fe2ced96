package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-timeclock/internal/shift"
	"go-timeclock/internal/timeclock"
	timeclockerrors "go-timeclock/internal/timeclock/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// summaryTTL matches the dashboard's refresh cadence; a summary is never
// older than one polling interval.
const summaryTTL = 20 * time.Second

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Daily(ctx context.Context, companyID string, date time.Time) (DailySummary, error)
	RefreshSummary(ctx context.Context, companyID string, date time.Time) error
	Range(ctx context.Context, companyID string, from, to time.Time, employeeIDs []string) ([]EmployeeDayRow, error)
	ExportDaily(ctx context.Context, companyID string, date time.Time) (Artifact, error)
}

type service struct {
	repo   timeclock.Repository
	rdb    *redis.Client
	sink   Sink
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(repo timeclock.Repository, rdb *redis.Client, sink Sink) Service {
	return &service{
		repo:   repo,
		rdb:    rdb,
		sink:   sink,
		logger: zap.L().Named("report.service"),
	}
}

func (s *service) Daily(ctx context.Context, companyID string, date time.Time) (DailySummary, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return DailySummary{}, timeclockerrors.ErrInvalidCompanyID
	}

	key := summaryKey(companyID, date)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var summary DailySummary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				return summary, nil
			}
		}
	}

	// Concurrent dashboard polls collapse into a single store read.
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.compute(ctx, companyID, date)
	})
	if err != nil {
		return DailySummary{}, err
	}

	summary := v.(DailySummary)
	s.cache(ctx, key, summary)
	return summary, nil
}

func (s *service) RefreshSummary(ctx context.Context, companyID string, date time.Time) error {
	summary, err := s.compute(ctx, companyID, date)
	if err != nil {
		return err
	}
	s.cache(ctx, summaryKey(companyID, date), summary)
	return nil
}

func (s *service) Range(ctx context.Context, companyID string, from, to time.Time, employeeIDs []string) ([]EmployeeDayRow, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, timeclockerrors.ErrInvalidCompanyID
	}

	records, err := s.repo.ListByCompanyAndRange(ctx, companyID, from, to, employeeIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]EmployeeDayRow, len(records))
	for i, r := range records {
		rows[i] = mapToRow(r)
	}
	return rows, nil
}

func (s *service) ExportDaily(ctx context.Context, companyID string, date time.Time) (Artifact, error) {
	summary, err := s.Daily(ctx, companyID, date)
	if err != nil {
		return Artifact{}, err
	}

	table := make([][]string, 0, len(summary.Rows)+1)
	table = append(table, []string{
		"Employee", "Date", "State", "Login", "Logout",
		"Total Break", "Total Work", "Status", "Overtime (hrs)",
	})
	for _, row := range summary.Rows {
		table = append(table, []string{
			row.EmployeeName, row.WorkDate, row.State, row.LoginAt, row.LogoutAt,
			row.BreakDuration, row.TotalWorkTime, row.Status, row.Overtime,
		})
	}

	name := fmt.Sprintf("shift-report-%s", date.Format("2006-01-02"))
	artifact, err := s.sink.Export(name, table)
	if err != nil {
		return Artifact{}, err
	}

	s.logger.Info("daily report exported",
		zap.String("company_id", companyID),
		zap.String("artifact", artifact.Name),
		zap.Int("rows", len(summary.Rows)),
	)
	return artifact, nil
}

func (s *service) compute(ctx context.Context, companyID string, date time.Time) (DailySummary, error) {
	records, err := s.repo.ListByCompanyAndDate(ctx, companyID, date)
	if err != nil {
		return DailySummary{}, err
	}

	summary := DailySummary{
		Date: date.Format("2006-01-02"),
		Rows: make([]EmployeeDayRow, 0, len(records)),
	}
	for _, r := range records {
		summary.ActiveCount++
		if r.HasOpenBreak() {
			summary.OnBreakCount++
		}
		if r.Status == string(shift.StatusComplete) {
			summary.CompletedCount++
		}
		summary.Rows = append(summary.Rows, mapToRow(r))
	}
	return summary, nil
}

func (s *service) cache(ctx context.Context, key string, summary DailySummary) {
	if s.rdb == nil {
		return
	}
	payload, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, payload, summaryTTL).Err(); err != nil {
		s.logger.Warn("cache daily summary failed", zap.Error(err))
	}
}

func summaryKey(companyID string, date time.Time) string {
	return fmt.Sprintf("report:daily:%s:%s", companyID, date.Format("2006-01-02"))
}
