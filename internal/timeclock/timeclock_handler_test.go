package timeclock_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-timeclock/internal/timeclock"
	timeclockerrors "go-timeclock/internal/timeclock/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	loginFn      func(ctx context.Context, companyID, employeeID string) (timeclock.ShiftResponse, error)
	startBreakFn func(ctx context.Context, companyID, employeeID string) (timeclock.ShiftResponse, error)
	endBreakFn   func(ctx context.Context, companyID, employeeID string) (timeclock.ShiftResponse, error)
	logoutFn     func(ctx context.Context, companyID, employeeID string) (timeclock.ShiftResponse, error)
	getTodayFn   func(ctx context.Context, companyID, employeeID string) (timeclock.ShiftResponse, error)
	getAllFn     func(ctx context.Context, companyID, actorID string, canReadAll bool) ([]timeclock.ShiftResponse, error)
}

func (f *fakeService) Login(ctx context.Context, companyID, employeeID string) (timeclock.ShiftResponse, error) {
	return f.loginFn(ctx, companyID, employeeID)
}
func (f *fakeService) StartBreak(ctx context.Context, companyID, employeeID string) (timeclock.ShiftResponse, error) {
	return f.startBreakFn(ctx, companyID, employeeID)
}
func (f *fakeService) EndBreak(ctx context.Context, companyID, employeeID string) (timeclock.ShiftResponse, error) {
	return f.endBreakFn(ctx, companyID, employeeID)
}
func (f *fakeService) Logout(ctx context.Context, companyID, employeeID string) (timeclock.ShiftResponse, error) {
	return f.logoutFn(ctx, companyID, employeeID)
}
func (f *fakeService) GetToday(ctx context.Context, companyID, employeeID string) (timeclock.ShiftResponse, error) {
	return f.getTodayFn(ctx, companyID, employeeID)
}
func (f *fakeService) GetAll(ctx context.Context, companyID, actorID string, canReadAll bool) ([]timeclock.ShiftResponse, error) {
	return f.getAllFn(ctx, companyID, actorID, canReadAll)
}

func TestHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("new shift returns 201", func(t *testing.T) {
		svc := &fakeService{
			loginFn: func(ctx context.Context, cid, eid string) (timeclock.ShiftResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, employeeID, eid)
				return timeclock.ShiftResponse{ID: uuid.New().String(), State: "WORKING"}, nil
			},
		}
		h := timeclock.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("company_id", companyID)
		c.Set("employee_id", employeeID)
		c.Request = httptest.NewRequest(http.MethodPost, "/shifts/login", nil)
		h.Login(c)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("repeat login returns 200", func(t *testing.T) {
		svc := &fakeService{
			loginFn: func(ctx context.Context, cid, eid string) (timeclock.ShiftResponse, error) {
				return timeclock.ShiftResponse{ID: uuid.New().String(), State: "WORKING", AlreadyLoggedIn: true}, nil
			},
		}
		h := timeclock.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("company_id", companyID)
		c.Set("employee_id", employeeID)
		c.Request = httptest.NewRequest(http.MethodPost, "/shifts/login", nil)
		h.Login(c)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "already_logged_in")
	})
}

func TestHandler_StartBreak_MapsTypedRejection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		startBreakFn: func(ctx context.Context, cid, eid string) (timeclock.ShiftResponse, error) {
			return timeclock.ShiftResponse{}, timeclockerrors.ErrBreakAlreadyTaken
		},
	}
	h := timeclock.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", uuid.New().String())
	c.Set("employee_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/shifts/break/start", nil)
	h.StartBreak(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), timeclockerrors.ErrBreakAlreadyTaken.Code)
}

func TestHandler_EndBreak_NoBreakInProgress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		endBreakFn: func(ctx context.Context, cid, eid string) (timeclock.ShiftResponse, error) {
			return timeclock.ShiftResponse{}, timeclockerrors.ErrNoBreakInProgress
		},
	}
	h := timeclock.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", uuid.New().String())
	c.Set("employee_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/shifts/break/end", nil)
	h.EndBreak(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), timeclockerrors.ErrNoBreakInProgress.Code)
}

func TestHandler_GetAll_Pagination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakeService{
		getAllFn: func(ctx context.Context, cid, actorID string, canReadAll bool) ([]timeclock.ShiftResponse, error) {
			assert.False(t, canReadAll)
			return []timeclock.ShiftResponse{
				{ID: uuid.New().String()},
				{ID: uuid.New().String()},
				{ID: uuid.New().String()},
			}, nil
		},
	}
	h := timeclock.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", companyID)
	c.Set("employee_id", employeeID)
	c.Set("role", "EMPLOYEE")
	c.Request = httptest.NewRequest(http.MethodGet, "/shifts?page=1&page_size=2", nil)
	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"meta\"")
	assert.Contains(t, w.Body.String(), "\"totalPages\":2")
}

func TestHandler_GetAll_PrivilegedRoleReadsCompany(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getAllFn: func(ctx context.Context, cid, actorID string, canReadAll bool) ([]timeclock.ShiftResponse, error) {
			assert.True(t, canReadAll)
			return nil, nil
		},
	}
	h := timeclock.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", uuid.New().String())
	c.Set("employee_id", uuid.New().String())
	c.Set("role", "ADMIN")
	c.Request = httptest.NewRequest(http.MethodGet, "/shifts", nil)
	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
