package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagewise/wagewise-backend-go/internal/domain/attendance"
	"github.com/wagewise/wagewise-backend-go/internal/domain/worker"
)

type fakeWorkerRepo struct {
	workers []worker.Worker
}

func (f *fakeWorkerRepo) Create(_ context.Context, w worker.Worker) (worker.Worker, error) {
	f.workers = append(f.workers, w)
	return w, nil
}

func (f *fakeWorkerRepo) GetByID(_ context.Context, id string) (worker.Worker, error) {
	for _, w := range f.workers {
		if w.ID == id {
			return w, nil
		}
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (f *fakeWorkerRepo) List(_ context.Context) ([]worker.Worker, error) {
	return f.workers, nil
}

func (f *fakeWorkerRepo) Update(_ context.Context, _ worker.Worker) error { return nil }
func (f *fakeWorkerRepo) Delete(_ context.Context, _ string) error        { return nil }

type fakeAttendanceRepo struct {
	records map[string]attendance.Record
}

func attKey(workerID, date string) string { return workerID + "|" + date }

func (f *fakeAttendanceRepo) Upsert(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records[attKey(rec.WorkerID, rec.Date)] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, _ string) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByWorkerAndDate(_ context.Context, workerID, date string) (*attendance.Record, error) {
	rec, ok := f.records[attKey(workerID, date)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeAttendanceRepo) ListByWorkerMonth(_ context.Context, workerID, month string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.WorkerID == workerID && len(rec.Date) >= 7 && rec.Date[:7] == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, _ string) error         { return nil }
func (f *fakeAttendanceRepo) DeleteByWorker(_ context.Context, _ string) error { return nil }

func (f *fakeAttendanceRepo) DeleteFutureForWorker(_ context.Context, workerID, today string) (int64, error) {
	var deleted int64
	for k, rec := range f.records {
		if rec.WorkerID == workerID && rec.Date > today {
			delete(f.records, k)
			deleted++
		}
	}
	return deleted, nil
}

func setupReports(today string) (*ReportServiceImpl, *fakeWorkerRepo, *fakeAttendanceRepo) {
	workers := &fakeWorkerRepo{}
	records := &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
	parsed, _ := time.Parse("2006-01-02", today)
	svc := NewReportService(workers, records).WithNow(func() time.Time { return parsed })
	return svc, workers, records
}

func addWorker(workers *fakeWorkerRepo, id, name string, salary int64, joinDate string) {
	workers.workers = append(workers.workers, worker.Worker{
		ID:             id,
		Name:           name,
		AssignedSalary: decimal.NewFromInt(salary),
		JoinDate:       joinDate,
	})
}

func addRecord(records *fakeAttendanceRepo, workerID, date, status string, taken int64) {
	records.records[attKey(workerID, date)] = attendance.Record{
		ID:         "r-" + workerID + "-" + date,
		WorkerID:   workerID,
		Date:       date,
		Status:     status,
		MoneyTaken: decimal.NewFromInt(taken),
	}
}

func TestWageSummary_FullMonth(t *testing.T) {
	svc, workers, records := setupReports("2024-02-10")
	addWorker(workers, "w-1", "Asha", 3100, "2023-06-01")
	addRecord(records, "w-1", "2024-01-10", attendance.StatusPresent, 0)
	addRecord(records, "w-1", "2024-01-11", attendance.StatusHalfDay, 100)

	summary, err := svc.WageSummary(context.Background(), "w-1", "2024-01")
	require.NoError(t, err)

	assert.Equal(t, "January 2024", summary.MonthLabel)
	assert.Equal(t, 1.5, summary.PresentEquivalentDays)
	assert.True(t, summary.GrossSalary.Equal(decimal.NewFromInt(150)))
	assert.True(t, summary.NetPayable.Equal(decimal.NewFromInt(50)))
}

func TestWageSummarySoFar_BoundsToToday(t *testing.T) {
	svc, workers, records := setupReports("2024-01-10")
	addWorker(workers, "w-1", "Asha", 3100, "2023-06-01")
	addRecord(records, "w-1", "2024-01-09", attendance.StatusPresent, 0)
	addRecord(records, "w-1", "2024-01-10", attendance.StatusPresent, 0)

	summary, err := svc.WageSummarySoFar(context.Background(), "w-1", "2024-01")
	require.NoError(t, err)

	assert.Equal(t, 10, summary.EffectiveDayCount)
	assert.Equal(t, 2.0, summary.PresentEquivalentDays)
	assert.True(t, summary.BaseEarnableSalary.Equal(decimal.NewFromInt(1000)))
}

func TestWageSummary_PurgesFutureRecords(t *testing.T) {
	svc, workers, records := setupReports("2024-01-10")
	addWorker(workers, "w-1", "Asha", 3100, "2023-06-01")
	addRecord(records, "w-1", "2024-01-09", attendance.StatusPresent, 0)
	addRecord(records, "w-1", "2024-01-20", attendance.StatusPresent, 500)

	summary, err := svc.WageSummary(context.Background(), "w-1", "2024-01")
	require.NoError(t, err)

	assert.Equal(t, 1.0, summary.PresentEquivalentDays)
	assert.True(t, summary.TotalMoneyTaken.IsZero())
	_, purged := records.records[attKey("w-1", "2024-01-20")]
	assert.False(t, purged)
}

func TestWageSummary_UnknownWorker(t *testing.T) {
	svc, _, _ := setupReports("2024-01-10")

	_, err := svc.WageSummary(context.Background(), "w-missing", "2024-01")
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestLeaveSummary_Counts(t *testing.T) {
	svc, workers, records := setupReports("2024-02-10")
	addWorker(workers, "w-1", "Asha", 3100, "2023-06-01")
	addRecord(records, "w-1", "2024-01-10", attendance.StatusAbsent, 0)
	addRecord(records, "w-1", "2024-01-11", attendance.StatusHalfDay, 0)
	addRecord(records, "w-1", "2024-01-12", attendance.StatusPresent, 0)

	summary, err := svc.LeaveSummary(context.Background(), "w-1", "2024-01")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.FullAbsences)
	assert.Equal(t, 1, summary.HalfDayLeaves)
	assert.Equal(t, 1.5, summary.TotalLeaveDays)
}

func TestExpenditureSummary_TotalsAcrossWorkers(t *testing.T) {
	svc, workers, records := setupReports("2024-02-10")
	addWorker(workers, "w-1", "Asha", 3100, "2023-06-01")
	addWorker(workers, "w-2", "Binod", 6200, "2023-06-01")

	addRecord(records, "w-1", "2024-01-10", attendance.StatusPresent, 50)
	addRecord(records, "w-2", "2024-01-10", attendance.StatusPresent, 0)
	addRecord(records, "w-2", "2024-01-11", attendance.StatusPresent, 100)

	summary, err := svc.ExpenditureSummary(context.Background(), "2024-01")
	require.NoError(t, err)

	require.Len(t, summary.Workers, 2)
	assert.True(t, summary.TotalAssignedSalaries.Equal(decimal.NewFromInt(9300)))
	// w-1: 1 day at 100; w-2: 2 days at 200.
	assert.True(t, summary.TotalCalculatedGrossSalaries.Equal(decimal.NewFromInt(500)))
	assert.True(t, summary.TotalMoneyTaken.Equal(decimal.NewFromInt(150)))
	assert.True(t, summary.TotalNetPayableSalaries.Equal(decimal.NewFromInt(350)))
}

func TestExpenditureSummary_NoWorkers(t *testing.T) {
	svc, _, _ := setupReports("2024-02-10")

	summary, err := svc.ExpenditureSummary(context.Background(), "2024-01")
	require.NoError(t, err)

	assert.Empty(t, summary.Workers)
	assert.True(t, summary.TotalNetPayableSalaries.IsZero())
}

func TestReports_BadMonth(t *testing.T) {
	svc, workers, _ := setupReports("2024-02-10")
	addWorker(workers, "w-1", "Asha", 3100, "2023-06-01")

	_, err := svc.WageSummary(context.Background(), "w-1", "Jan 2024")
	assert.Error(t, err)

	_, err = svc.ExpenditureSummary(context.Background(), "2024-13")
	assert.Error(t, err)
}
