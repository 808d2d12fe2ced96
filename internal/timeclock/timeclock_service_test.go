package timeclock

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-timeclock/internal/employee"
	"go-timeclock/internal/shift"
	timeclockerrors "go-timeclock/internal/timeclock/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn                   func(tx *sql.Tx) Repository
	createFn                   func(ctx context.Context, r *ShiftRecord) error
	findByEmployeeAndDateFn    func(ctx context.Context, companyID, employeeID string, date time.Time) (*ShiftRecord, error)
	listByCompanyAndDateFn     func(ctx context.Context, companyID string, date time.Time) ([]ShiftRecord, error)
	listByCompanyAndRangeFn    func(ctx context.Context, companyID string, from, to time.Time, employeeIDs []string) ([]ShiftRecord, error)
	listByCompanyAndEmployeeFn func(ctx context.Context, companyID, employeeID string) ([]ShiftRecord, error)
	listByCompanyFn            func(ctx context.Context, companyID string) ([]ShiftRecord, error)
	updateFn                   func(ctx context.Context, r *ShiftRecord) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, r *ShiftRecord) error {
	return f.createFn(ctx, r)
}
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*ShiftRecord, error) {
	return f.findByEmployeeAndDateFn(ctx, companyID, employeeID, date)
}
func (f *fakeRepo) ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]ShiftRecord, error) {
	return f.listByCompanyAndDateFn(ctx, companyID, date)
}
func (f *fakeRepo) ListByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time, employeeIDs []string) ([]ShiftRecord, error) {
	return f.listByCompanyAndRangeFn(ctx, companyID, from, to, employeeIDs)
}
func (f *fakeRepo) ListByCompanyAndEmployee(ctx context.Context, companyID, employeeID string) ([]ShiftRecord, error) {
	return f.listByCompanyAndEmployeeFn(ctx, companyID, employeeID)
}
func (f *fakeRepo) ListByCompany(ctx context.Context, companyID string) ([]ShiftRecord, error) {
	return f.listByCompanyFn(ctx, companyID)
}
func (f *fakeRepo) Update(ctx context.Context, r *ShiftRecord) error {
	return f.updateFn(ctx, r)
}

type fakeEmployeeRepo struct {
	exists bool
	err    error
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepo) FindAllByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeRepo) ExistsInCompany(ctx context.Context, companyID, id string) (bool, error) {
	return f.exists, f.err
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, e *employee.Employee) error { return nil }

// newLifecycleFixture wires a fake repo backed by a single in-memory record,
// the shape every transition test needs.
func newLifecycleFixture() *fakeRepo {
	var saved *ShiftRecord
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, r *ShiftRecord) error {
		cp := *r
		saved = &cp
		return nil
	}
	repo.updateFn = func(ctx context.Context, r *ShiftRecord) error {
		cp := *r
		saved = &cp
		return nil
	}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, companyID, employeeID string, date time.Time) (*ShiftRecord, error) {
		if saved == nil {
			return nil, gorm.ErrRecordNotFound
		}
		cp := *saved
		return &cp, nil
	}
	return repo
}

func TestService_FullShiftLifecycle(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	ctx := context.Background()

	repo := newLifecycleFixture()
	svc := NewService(db, repo, &fakeEmployeeRepo{exists: true}, shift.DefaultPolicy())

	mock.ExpectBegin()
	mock.ExpectCommit()
	loginResp, err := svc.Login(ctx, companyID, employeeID)
	assert.NoError(t, err)
	assert.False(t, loginResp.AlreadyLoggedIn)
	assert.Equal(t, string(StateWorking), loginResp.State)
	assert.Equal(t, "00:00", loginResp.BreakDuration)

	mock.ExpectBegin()
	mock.ExpectCommit()
	breakResp, err := svc.StartBreak(ctx, companyID, employeeID)
	assert.NoError(t, err)
	assert.Equal(t, string(StateOnBreak), breakResp.State)
	assert.NotNil(t, breakResp.BreakStartAt)

	mock.ExpectBegin()
	mock.ExpectCommit()
	endResp, err := svc.EndBreak(ctx, companyID, employeeID)
	assert.NoError(t, err)
	assert.Equal(t, string(StateWorking), endResp.State)
	assert.NotNil(t, endResp.BreakEndAt)

	mock.ExpectBegin()
	mock.ExpectCommit()
	logoutResp, err := svc.Logout(ctx, companyID, employeeID)
	assert.NoError(t, err)
	assert.Equal(t, string(StateLoggedOut), logoutResp.State)
	assert.NotEmpty(t, logoutResp.TotalWorkTime)
	assert.NotEmpty(t, logoutResp.Status)
	assert.NotEmpty(t, logoutResp.Overtime)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Login_Idempotent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	ctx := context.Background()

	repo := newLifecycleFixture()
	svc := NewService(db, repo, &fakeEmployeeRepo{exists: true}, shift.DefaultPolicy())

	mock.ExpectBegin()
	mock.ExpectCommit()
	first, err := svc.Login(ctx, companyID, employeeID)
	assert.NoError(t, err)

	// The second login reports the open shift without touching it.
	mock.ExpectBegin()
	mock.ExpectRollback()
	second, err := svc.Login(ctx, companyID, employeeID)
	assert.NoError(t, err)
	assert.True(t, second.AlreadyLoggedIn)
	assert.Equal(t, first.LoginAt, second.LoginAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Login_UnknownEmployee(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newLifecycleFixture()
	svc := NewService(db, repo, &fakeEmployeeRepo{exists: false}, shift.DefaultPolicy())

	_, err := svc.Login(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, timeclockerrors.ErrEmployeeNotInCompany)
}

func TestService_Login_AfterLogout(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	ctx := context.Background()

	repo := newLifecycleFixture()
	svc := NewService(db, repo, &fakeEmployeeRepo{exists: true}, shift.DefaultPolicy())

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Login(ctx, companyID, employeeID)
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err = svc.Logout(ctx, companyID, employeeID)
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.Login(ctx, companyID, employeeID)
	assert.ErrorIs(t, err, timeclockerrors.ErrShiftAlreadyClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_StartBreak_Rejections(t *testing.T) {
	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	ctx := context.Background()

	t.Run("without login", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newLifecycleFixture()
		svc := NewService(db, repo, &fakeEmployeeRepo{exists: true}, shift.DefaultPolicy())

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.StartBreak(ctx, companyID, employeeID)
		assert.ErrorIs(t, err, timeclockerrors.ErrNoLoginRecorded)
	})

	t.Run("while already on break", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newLifecycleFixture()
		svc := NewService(db, repo, &fakeEmployeeRepo{exists: true}, shift.DefaultPolicy())

		mock.ExpectBegin()
		mock.ExpectCommit()
		_, err := svc.Login(ctx, companyID, employeeID)
		assert.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectCommit()
		_, err = svc.StartBreak(ctx, companyID, employeeID)
		assert.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err = svc.StartBreak(ctx, companyID, employeeID)
		assert.ErrorIs(t, err, timeclockerrors.ErrAlreadyOnBreak)
	})

	t.Run("second break of the day", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newLifecycleFixture()
		svc := NewService(db, repo, &fakeEmployeeRepo{exists: true}, shift.DefaultPolicy())

		mock.ExpectBegin()
		mock.ExpectCommit()
		_, err := svc.Login(ctx, companyID, employeeID)
		assert.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectCommit()
		_, err = svc.StartBreak(ctx, companyID, employeeID)
		assert.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectCommit()
		_, err = svc.EndBreak(ctx, companyID, employeeID)
		assert.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err = svc.StartBreak(ctx, companyID, employeeID)
		assert.ErrorIs(t, err, timeclockerrors.ErrBreakAlreadyTaken)
	})
}

func TestService_EndBreak_WithoutOpenBreak(t *testing.T) {
	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	ctx := context.Background()

	t.Run("no record at all", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newLifecycleFixture()
		svc := NewService(db, repo, &fakeEmployeeRepo{exists: true}, shift.DefaultPolicy())

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.EndBreak(ctx, companyID, employeeID)
		assert.ErrorIs(t, err, timeclockerrors.ErrNoBreakInProgress)
	})

	t.Run("working but never started a break", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newLifecycleFixture()
		svc := NewService(db, repo, &fakeEmployeeRepo{exists: true}, shift.DefaultPolicy())

		mock.ExpectBegin()
		mock.ExpectCommit()
		_, err := svc.Login(ctx, companyID, employeeID)
		assert.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err = svc.EndBreak(ctx, companyID, employeeID)
		assert.ErrorIs(t, err, timeclockerrors.ErrNoBreakInProgress)
	})

	t.Run("break already ended", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newLifecycleFixture()
		svc := NewService(db, repo, &fakeEmployeeRepo{exists: true}, shift.DefaultPolicy())

		mock.ExpectBegin()
		mock.ExpectCommit()
		_, err := svc.Login(ctx, companyID, employeeID)
		assert.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectCommit()
		_, err = svc.StartBreak(ctx, companyID, employeeID)
		assert.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectCommit()
		_, err = svc.EndBreak(ctx, companyID, employeeID)
		assert.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err = svc.EndBreak(ctx, companyID, employeeID)
		assert.ErrorIs(t, err, timeclockerrors.ErrNoBreakInProgress)
	})
}

func TestService_Logout_Rejections(t *testing.T) {
	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	ctx := context.Background()

	t.Run("without login", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newLifecycleFixture()
		svc := NewService(db, repo, &fakeEmployeeRepo{exists: true}, shift.DefaultPolicy())

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err := svc.Logout(ctx, companyID, employeeID)
		assert.ErrorIs(t, err, timeclockerrors.ErrNoLoginRecorded)
	})

	t.Run("twice", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newLifecycleFixture()
		svc := NewService(db, repo, &fakeEmployeeRepo{exists: true}, shift.DefaultPolicy())

		mock.ExpectBegin()
		mock.ExpectCommit()
		_, err := svc.Login(ctx, companyID, employeeID)
		assert.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectCommit()
		_, err = svc.Logout(ctx, companyID, employeeID)
		assert.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectRollback()
		_, err = svc.Logout(ctx, companyID, employeeID)
		assert.ErrorIs(t, err, timeclockerrors.ErrShiftAlreadyClosed)
	})
}

func TestService_Logout_ClosesOpenBreak(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	ctx := context.Background()

	repo := newLifecycleFixture()
	svc := NewService(db, repo, &fakeEmployeeRepo{exists: true}, shift.DefaultPolicy())

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Login(ctx, companyID, employeeID)
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err = svc.StartBreak(ctx, companyID, employeeID)
	assert.NoError(t, err)

	// Logout while on break ends the break at logout time.
	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Logout(ctx, companyID, employeeID)
	assert.NoError(t, err)
	assert.Equal(t, string(StateLoggedOut), resp.State)
	assert.NotNil(t, resp.BreakEndAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_InvalidIdentity(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newLifecycleFixture()
	svc := NewService(db, repo, &fakeEmployeeRepo{exists: true}, shift.DefaultPolicy())
	ctx := context.Background()

	_, err := svc.Login(ctx, "not-a-uuid", uuid.New().String())
	assert.ErrorIs(t, err, timeclockerrors.ErrInvalidCompanyID)

	_, err = svc.Login(ctx, uuid.New().String(), "not-a-uuid")
	assert.ErrorIs(t, err, timeclockerrors.ErrInvalidEmployeeID)
}

func TestService_GetAll_ScopesToActor(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New().String()
	actorID := uuid.New().String()
	ctx := context.Background()

	var listedEmployee string
	repo := &fakeRepo{}
	repo.listByCompanyAndEmployeeFn = func(ctx context.Context, companyID, employeeID string) ([]ShiftRecord, error) {
		listedEmployee = employeeID
		return []ShiftRecord{}, nil
	}
	repo.listByCompanyFn = func(ctx context.Context, companyID string) ([]ShiftRecord, error) {
		t.Fatal("company-wide listing must not be reachable without privilege")
		return nil, nil
	}

	svc := NewService(db, repo, &fakeEmployeeRepo{exists: true}, shift.DefaultPolicy())
	_, err := svc.GetAll(ctx, companyID, actorID, false)
	assert.NoError(t, err)
	assert.Equal(t, actorID, listedEmployee)
}
