package report_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-timeclock/internal/report"
	"go-timeclock/internal/timeclock"
	"go-timeclock/internal/timeclock/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func newRecord(name string, breakOpen, loggedOut bool) timeclock.ShiftRecord {
	now := time.Now().UTC()
	rec := timeclock.ShiftRecord{
		ID:            uuid.New(),
		CompanyID:     uuid.New(),
		EmployeeID:    uuid.New(),
		WorkDate:      now.Truncate(24 * time.Hour),
		LoginAt:       now.Add(-8 * time.Hour),
		BreakDuration: "00:30",
		Employee:      &timeclock.EmployeeRef{ID: uuid.New(), FullName: name},
	}
	if breakOpen {
		bs := now.Add(-10 * time.Minute)
		rec.BreakStartAt = &bs
	}
	if loggedOut {
		bs := now.Add(-5 * time.Hour)
		be := now.Add(-4*time.Hour - 30*time.Minute)
		rec.BreakStartAt = &bs
		rec.BreakEndAt = &be
		out := now
		rec.LogoutAt = &out
		rec.TotalWorkTime = "07:30"
		rec.Status = "COMPLETE"
		rec.Overtime = "0.00"
	}
	return rec
}

func TestService_Daily_ComputesCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()

	companyID := uuid.New().String()
	date := time.Now().UTC().Truncate(24 * time.Hour)
	records := []timeclock.ShiftRecord{
		newRecord("Working One", false, false),
		newRecord("On Break", true, false),
		newRecord("Done For Today", false, true),
	}

	key := "report:daily:" + companyID + ":" + date.Format("2006-01-02")
	redisMock.ExpectGet(key).RedisNil()
	redisMock.Regexp().ExpectSet(key, `.*`, 20*time.Second).SetVal("OK")

	repo.EXPECT().
		ListByCompanyAndDate(gomock.Any(), companyID, date).
		Return(records, nil)

	svc := report.NewService(repo, rdb, report.NewCSVSink())
	summary, err := svc.Daily(context.Background(), companyID, date)

	assert.NoError(t, err)
	assert.Equal(t, 3, summary.ActiveCount)
	assert.Equal(t, 1, summary.OnBreakCount)
	assert.Equal(t, 1, summary.CompletedCount)
	assert.Len(t, summary.Rows, 3)
	assert.Equal(t, "ON_BREAK", summary.Rows[1].State)
	assert.Equal(t, "LOGGED_OUT", summary.Rows[2].State)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_Daily_ServesFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()

	companyID := uuid.New().String()
	date := time.Now().UTC().Truncate(24 * time.Hour)
	key := "report:daily:" + companyID + ":" + date.Format("2006-01-02")

	cached := report.DailySummary{Date: date.Format("2006-01-02"), ActiveCount: 5}
	payload, _ := json.Marshal(cached)
	redisMock.ExpectGet(key).SetVal(string(payload))

	// No repository expectation: a cache hit never touches the store.
	svc := report.NewService(repo, rdb, report.NewCSVSink())
	summary, err := svc.Daily(context.Background(), companyID, date)

	assert.NoError(t, err)
	assert.Equal(t, 5, summary.ActiveCount)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_Daily_InvalidCompanyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)

	svc := report.NewService(repo, nil, report.NewCSVSink())
	_, err := svc.Daily(context.Background(), "not-a-uuid", time.Now())
	assert.Error(t, err)
}

func TestService_RefreshSummary_OverwritesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()

	companyID := uuid.New().String()
	date := time.Now().UTC().Truncate(24 * time.Hour)
	key := "report:daily:" + companyID + ":" + date.Format("2006-01-02")

	repo.EXPECT().
		ListByCompanyAndDate(gomock.Any(), companyID, date).
		Return([]timeclock.ShiftRecord{newRecord("Solo", false, false)}, nil)
	redisMock.Regexp().ExpectSet(key, `.*`, 20*time.Second).SetVal("OK")

	svc := report.NewService(repo, rdb, report.NewCSVSink())
	err := svc.RefreshSummary(context.Background(), companyID, date)

	assert.NoError(t, err)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_Range_DelegatesFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)

	companyID := uuid.New().String()
	from := time.Now().UTC().AddDate(0, 0, -7).Truncate(24 * time.Hour)
	to := time.Now().UTC().Truncate(24 * time.Hour)
	ids := []string{uuid.New().String()}

	repo.EXPECT().
		ListByCompanyAndRange(gomock.Any(), companyID, from, to, ids).
		Return([]timeclock.ShiftRecord{newRecord("Ranged", false, true)}, nil)

	svc := report.NewService(repo, nil, report.NewCSVSink())
	rows, err := svc.Range(context.Background(), companyID, from, to, ids)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Ranged", rows[0].EmployeeName)
}

func TestService_ExportDaily_BuildsCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)

	companyID := uuid.New().String()
	date := time.Now().UTC().Truncate(24 * time.Hour)

	repo.EXPECT().
		ListByCompanyAndDate(gomock.Any(), companyID, date).
		Return([]timeclock.ShiftRecord{newRecord("Csv Person", false, true)}, nil)

	svc := report.NewService(repo, nil, report.NewCSVSink())
	artifact, err := svc.ExportDaily(context.Background(), companyID, date)

	assert.NoError(t, err)
	assert.Equal(t, "shift-report-"+date.Format("2006-01-02")+".csv", artifact.Name)
	assert.Equal(t, "text/csv", artifact.ContentType)

	body := string(artifact.Data)
	assert.Contains(t, body, "Employee,Date,State,Login,Logout,Total Break,Total Work,Status,Overtime (hrs)")
	assert.Contains(t, body, "Csv Person")
	assert.Contains(t, body, "07:30")
}
