package legacyimport

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagewise/wagewise-backend-go/internal/domain/anomaly"
	"github.com/wagewise/wagewise-backend-go/internal/domain/attendance"
	"github.com/wagewise/wagewise-backend-go/internal/domain/worker"
)

type fakeWorkerRepo struct {
	workers map[string]worker.Worker
}

func (f *fakeWorkerRepo) Create(_ context.Context, w worker.Worker) (worker.Worker, error) {
	f.workers[w.ID] = w
	return w, nil
}

func (f *fakeWorkerRepo) GetByID(_ context.Context, id string) (worker.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (f *fakeWorkerRepo) List(_ context.Context) ([]worker.Worker, error) { return nil, nil }
func (f *fakeWorkerRepo) Update(_ context.Context, _ worker.Worker) error { return nil }
func (f *fakeWorkerRepo) Delete(_ context.Context, _ string) error        { return nil }

type fakeAttendanceRepo struct {
	records map[string]attendance.Record
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records[rec.WorkerID+"|"+rec.Date] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, _ string) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByWorkerAndDate(_ context.Context, _, _ string) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByWorkerMonth(_ context.Context, _, _ string) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, _ string) error         { return nil }
func (f *fakeAttendanceRepo) DeleteByWorker(_ context.Context, _ string) error { return nil }

func (f *fakeAttendanceRepo) DeleteFutureForWorker(_ context.Context, _, _ string) (int64, error) {
	return 0, nil
}

type fakeReportRepo struct {
	reports map[string]anomaly.Report
}

func (f *fakeReportRepo) Upsert(_ context.Context, report anomaly.Report) (anomaly.Report, error) {
	f.reports[report.WorkerID+"|"+report.MonthYear] = report
	return report, nil
}

func (f *fakeReportRepo) Get(_ context.Context, workerID, monthYear string) (anomaly.Report, error) {
	report, ok := f.reports[workerID+"|"+monthYear]
	if !ok {
		return anomaly.Report{}, anomaly.ErrReportNotFound
	}
	return report, nil
}

func (f *fakeReportRepo) List(_ context.Context) ([]anomaly.Report, error) {
	var out []anomaly.Report
	for _, report := range f.reports {
		out = append(out, report)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GeneratedAt.After(out[j].GeneratedAt) })
	return out, nil
}

func (f *fakeReportRepo) EvictBeyond(_ context.Context, _ int) error { return nil }

func setupImporter(retention int) (*Importer, *fakeWorkerRepo, *fakeAttendanceRepo, *fakeReportRepo) {
	workers := &fakeWorkerRepo{workers: make(map[string]worker.Worker)}
	records := &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
	reports := &fakeReportRepo{reports: make(map[string]anomaly.Report)}
	imp := NewImporter(workers, records, reports, retention).WithNow(func() time.Time {
		return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	})
	return imp, workers, records, reports
}

func TestRun_MigratesLegacyShapes(t *testing.T) {
	imp, workers, records, _ := setupImporter(20)

	workersJSON := []byte(`[
		{"id": "w-1", "name": "Asha", "assignedSalary": 3100, "joinDate": "2023-06-01", "leftDate": null},
		{"id": "w-2", "name": "Binod", "assignedSalary": 2800, "joinDate": "", "leftDate": ""}
	]`)
	recordsJSON := []byte(`[
		{"id": "r-1", "workerId": "w-1", "date": "2024-01-10", "status": "present"},
		{"id": "r-2", "workerId": "w-1", "date": "2024-01-11", "status": "per-day-wage-taken", "perDayWageAmount": 150},
		{"id": "r-3", "workerId": "w-1", "date": "2024-01-12", "status": "sick-leave"}
	]`)

	summary, err := imp.Run(context.Background(), workersJSON, recordsJSON, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.WorkersImported)
	assert.Equal(t, 3, summary.RecordsImported)
	assert.Equal(t, 2, summary.StatusesMigrated)
	assert.Equal(t, 1, summary.JoinDatesDefaulted)

	// Missing join date backfilled with today; blank left date -> not set.
	binod := workers.workers["w-2"]
	assert.Equal(t, "2024-03-15", binod.JoinDate)
	assert.Nil(t, binod.LeftDate)

	// Retired status becomes present, carrying the legacy amount over.
	migrated := records.records["w-1|2024-01-11"]
	assert.Equal(t, attendance.StatusPresent, migrated.Status)
	assert.True(t, migrated.MoneyTaken.Equal(decimal.NewFromInt(150)))

	// Unrecognized status also defaults to present, with zero taken.
	unknown := records.records["w-1|2024-01-12"]
	assert.Equal(t, attendance.StatusPresent, unknown.Status)
	assert.True(t, unknown.MoneyTaken.IsZero())
}

func TestRun_CollapsesDuplicatesLastWins(t *testing.T) {
	imp, _, records, _ := setupImporter(20)

	workersJSON := []byte(`[{"id": "w-1", "name": "Asha", "assignedSalary": 3100, "joinDate": "2023-06-01"}]`)
	recordsJSON := []byte(`[
		{"id": "r-1", "workerId": "w-1", "date": "2024-01-10", "status": "absent"},
		{"id": "r-2", "workerId": "w-1", "date": "2024-01-10", "status": "present", "perDayWageAmount": 90}
	]`)

	summary, err := imp.Run(context.Background(), workersJSON, recordsJSON, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.RecordsImported)
	assert.Equal(t, 1, summary.RecordsCollapsed)

	kept := records.records["w-1|2024-01-10"]
	assert.Equal(t, attendance.StatusPresent, kept.Status)
	assert.True(t, kept.MoneyTaken.Equal(decimal.NewFromInt(90)))
}

func TestRun_SkipsOrphanedRecords(t *testing.T) {
	imp, _, records, _ := setupImporter(20)

	workersJSON := []byte(`[{"id": "w-1", "name": "Asha", "assignedSalary": 3100, "joinDate": "2023-06-01"}]`)
	recordsJSON := []byte(`[
		{"id": "r-1", "workerId": "w-1", "date": "2024-01-10", "status": "present"},
		{"id": "r-2", "workerId": "w-gone", "date": "2024-01-10", "status": "present"}
	]`)

	summary, err := imp.Run(context.Background(), workersJSON, recordsJSON, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.RecordsImported)
	assert.Equal(t, 1, summary.RecordsOrphaned)
	assert.Len(t, records.records, 1)
}

func TestRun_KeepsNewestReportsWithinRetention(t *testing.T) {
	imp, _, _, reports := setupImporter(2)

	workersJSON := []byte(`[{"id": "w-1", "name": "Asha", "assignedSalary": 3100, "joinDate": "2023-06-01"}]`)
	reportsJSON := []byte(`[
		{"workerId": "w-1", "monthYear": "2024-01", "anomalies": [], "summary": "a", "generatedAt": "2024-02-01T10:00:00Z"},
		{"workerId": "w-1", "monthYear": "2023-12", "anomalies": [], "summary": "b", "generatedAt": "2024-01-01T10:00:00Z"},
		{"workerId": "w-1", "monthYear": "2024-02", "anomalies": ["spike"], "summary": "c", "generatedAt": "2024-03-01T10:00:00Z"}
	]`)

	summary, err := imp.Run(context.Background(), workersJSON, nil, reportsJSON)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.ReportsImported)
	assert.Len(t, reports.reports, 2)

	_, err = reports.Get(context.Background(), "w-1", "2023-12")
	assert.ErrorIs(t, err, anomaly.ErrReportNotFound, "oldest report beyond retention is dropped")

	newest, err := reports.Get(context.Background(), "w-1", "2024-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"spike"}, newest.Anomalies)
}

func TestRun_MalformedExport(t *testing.T) {
	imp, _, _, _ := setupImporter(20)

	_, err := imp.Run(context.Background(), []byte(`{"not": "an array"}`), nil, nil)
	assert.Error(t, err)
}

func TestRun_EmptyExports(t *testing.T) {
	imp, _, _, _ := setupImporter(20)

	summary, err := imp.Run(context.Background(), []byte(`[]`), nil, nil)
	require.NoError(t, err)
	assert.Zero(t, summary.WorkersImported)
}
