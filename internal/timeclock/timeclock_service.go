package timeclock

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"go-timeclock/internal/employee"
	"go-timeclock/internal/events"
	"go-timeclock/internal/messaging/kafka"
	"go-timeclock/internal/shared/contextutil"
	"go-timeclock/internal/shift"
	timeclockerrors "go-timeclock/internal/timeclock/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=timeclock_service.go -destination=mock/timeclock_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, companyID, employeeID string) (ShiftResponse, error)
	StartBreak(ctx context.Context, companyID, employeeID string) (ShiftResponse, error)
	EndBreak(ctx context.Context, companyID, employeeID string) (ShiftResponse, error)
	Logout(ctx context.Context, companyID, employeeID string) (ShiftResponse, error)
	GetToday(ctx context.Context, companyID, employeeID string) (ShiftResponse, error)
	GetAll(ctx context.Context, companyID, actorID string, canReadAll bool) ([]ShiftResponse, error)
}

// service is the time-tracking state machine. Every transition captures a
// single timestamp up front, validates the record's current state, applies
// the mutation and its derived fields in one transaction, and enqueues the
// transition event in that same transaction. A rejected transition leaves
// the record untouched.
type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	outbox       kafka.OutboxRepository
	policy       shift.Policy
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository, policy shift.Policy) Service {
	return NewServiceWithOutbox(db, repo, employeeRepo, nil, policy)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	outboxRepo kafka.OutboxRepository,
	policy shift.Policy,
) Service {
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		outbox:       outboxRepo,
		policy:       policy,
		logger:       zap.L().Named("timeclock.service"),
	}
}

func (s *service) Login(ctx context.Context, companyID, employeeID string) (ShiftResponse, error) {
	companyUUID, employeeUUID, err := parseIdentity(companyID, employeeID)
	if err != nil {
		return ShiftResponse{}, err
	}

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	exists, err := s.employeeRepo.ExistsInCompany(ctx, companyID, employeeID)
	if err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}
	if !exists {
		return ShiftResponse{}, timeclockerrors.ErrEmployeeNotInCompany
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmployeeAndDate(ctx, companyID, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ShiftResponse{}, mapStoreError(err)
	}
	if err == nil {
		if existing.LogoutAt != nil {
			return ShiftResponse{}, timeclockerrors.ErrShiftAlreadyClosed
		}
		// Idempotent re-login: report it, don't reject it.
		resp := mapToResponse(*existing)
		resp.AlreadyLoggedIn = true
		return resp, nil
	}

	rec := &ShiftRecord{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		EmployeeID:    employeeUUID,
		WorkDate:      today,
		LoginAt:       now,
		BreakDuration: "00:00",
	}

	if err := qtx.Create(ctx, rec); err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}
	if err := s.enqueueTransition(ctx, tx, rec, events.ShiftLoggedIn, now); err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}
	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}

	s.logger.Info("shift opened",
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
		zap.String("work_date", today.Format("2006-01-02")),
	)
	return mapToResponse(*rec), nil
}

func (s *service) StartBreak(ctx context.Context, companyID, employeeID string) (ShiftResponse, error) {
	if _, _, err := parseIdentity(companyID, employeeID); err != nil {
		return ShiftResponse{}, err
	}

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByEmployeeAndDate(ctx, companyID, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, timeclockerrors.ErrNoLoginRecorded
		}
		return ShiftResponse{}, mapStoreError(err)
	}
	if rec.LogoutAt != nil {
		return ShiftResponse{}, timeclockerrors.ErrShiftAlreadyClosed
	}
	if rec.HasOpenBreak() {
		return ShiftResponse{}, timeclockerrors.ErrAlreadyOnBreak
	}
	// One break per day: a second break is rejected outright.
	if rec.BreakTaken() {
		return ShiftResponse{}, timeclockerrors.ErrBreakAlreadyTaken
	}

	rec.BreakStartAt = &now

	if err := qtx.Update(ctx, rec); err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}
	if err := s.enqueueTransition(ctx, tx, rec, events.ShiftBreakStart, now); err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}
	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}

	return mapToResponse(*rec), nil
}

func (s *service) EndBreak(ctx context.Context, companyID, employeeID string) (ShiftResponse, error) {
	if _, _, err := parseIdentity(companyID, employeeID); err != nil {
		return ShiftResponse{}, err
	}

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByEmployeeAndDate(ctx, companyID, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, timeclockerrors.ErrNoBreakInProgress
		}
		return ShiftResponse{}, mapStoreError(err)
	}
	if !rec.HasOpenBreak() {
		return ShiftResponse{}, timeclockerrors.ErrNoBreakInProgress
	}

	rec.BreakEndAt = &now
	rec.BreakDuration = shift.MinutesToDisplay(shift.ElapsedMinutes(rec.BreakStartAt, &now))

	if err := qtx.Update(ctx, rec); err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}
	if err := s.enqueueTransition(ctx, tx, rec, events.ShiftBreakEnd, now); err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}
	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}

	return mapToResponse(*rec), nil
}

func (s *service) Logout(ctx context.Context, companyID, employeeID string) (ShiftResponse, error) {
	if _, _, err := parseIdentity(companyID, employeeID); err != nil {
		return ShiftResponse{}, err
	}

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByEmployeeAndDate(ctx, companyID, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, timeclockerrors.ErrNoLoginRecorded
		}
		return ShiftResponse{}, mapStoreError(err)
	}
	if rec.LogoutAt != nil {
		return ShiftResponse{}, timeclockerrors.ErrShiftAlreadyClosed
	}

	// An open break is closed at logout time so the employee never loses
	// break accounting by forgetting to end it.
	if rec.HasOpenBreak() {
		rec.BreakEndAt = &now
		rec.BreakDuration = shift.MinutesToDisplay(shift.ElapsedMinutes(rec.BreakStartAt, &now))
	}

	loginAt := rec.LoginAt
	breakMinutes := shift.DisplayToMinutes(rec.BreakDuration)

	rec.LogoutAt = &now
	rec.TotalWorkTime = shift.MinutesToDisplay(shift.ElapsedMinutes(&loginAt, &now) - breakMinutes)
	rec.Status = string(shift.EvaluateStatus(rec.BreakDuration, rec.TotalWorkTime, s.policy))
	rec.Overtime = strconv.FormatFloat(shift.CalculateOvertime(&loginAt, &now, breakMinutes, s.policy), 'f', 2, 64)

	if err := qtx.Update(ctx, rec); err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}
	if err := s.enqueueTransition(ctx, tx, rec, events.ShiftLoggedOut, now); err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}
	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}

	s.logger.Info("shift closed",
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
		zap.String("status", rec.Status),
		zap.String("total_work_time", rec.TotalWorkTime),
		zap.String("overtime", rec.Overtime),
	)
	return mapToResponse(*rec), nil
}

func (s *service) GetToday(ctx context.Context, companyID, employeeID string) (ShiftResponse, error) {
	if _, _, err := parseIdentity(companyID, employeeID); err != nil {
		return ShiftResponse{}, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	rec, err := s.repo.FindByEmployeeAndDate(ctx, companyID, employeeID, today)
	if err != nil {
		return ShiftResponse{}, mapStoreError(err)
	}
	return mapToResponse(*rec), nil
}

func (s *service) GetAll(ctx context.Context, companyID, actorID string, canReadAll bool) ([]ShiftResponse, error) {
	var (
		rows []ShiftRecord
		err  error
	)
	if canReadAll {
		rows, err = s.repo.ListByCompany(ctx, companyID)
	} else {
		if _, parseErr := uuid.Parse(actorID); parseErr != nil {
			return nil, timeclockerrors.ErrInvalidEmployeeID
		}
		rows, err = s.repo.ListByCompanyAndEmployee(ctx, companyID, actorID)
	}
	if err != nil {
		return nil, mapStoreError(err)
	}

	res := make([]ShiftResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) enqueueTransition(
	ctx context.Context,
	tx *sql.Tx,
	rec *ShiftRecord,
	eventType string,
	now time.Time,
) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.ShiftTransitionEvent{
		EventType:  eventType,
		RecordID:   rec.ID.String(),
		EmployeeID: rec.EmployeeID.String(),
		CompanyID:  rec.CompanyID.String(),
		WorkDate:   rec.WorkDate.Format("2006-01-02"),
		OccurredAt: now,
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "shift_record",
		AggregateID:   rec.ID.String(),
		EventType:     eventType,
		Topic:         events.ShiftTransitionsTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parseIdentity(companyID, employeeID string) (uuid.UUID, uuid.UUID, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, timeclockerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, timeclockerrors.ErrInvalidEmployeeID
	}
	return companyUUID, employeeUUID, nil
}
