package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagewise/wagewise-backend-go/internal/config"
	"github.com/wagewise/wagewise-backend-go/internal/domain/anomaly"
	"github.com/wagewise/wagewise-backend-go/internal/domain/attendance"
	"github.com/wagewise/wagewise-backend-go/internal/domain/report"
	"github.com/wagewise/wagewise-backend-go/internal/domain/worker"
)

// Stub services returning canned values or errors per call.

type stubWorkerService struct {
	workerResp worker.WorkerResponse
	err        error
}

func (s *stubWorkerService) CreateWorker(_ context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}
	return s.workerResp, s.err
}

func (s *stubWorkerService) GetWorker(_ context.Context, _ string) (worker.WorkerResponse, error) {
	return s.workerResp, s.err
}

func (s *stubWorkerService) ListWorkers(_ context.Context) (worker.ListWorkersResponse, error) {
	return worker.ListWorkersResponse{Workers: []worker.WorkerResponse{}}, s.err
}

func (s *stubWorkerService) UpdateWorker(_ context.Context, _ worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	return s.workerResp, s.err
}

func (s *stubWorkerService) DeleteWorker(_ context.Context, _ string) error { return s.err }

type stubAttendanceService struct {
	record attendance.RecordResponse
	view   attendance.MonthViewResponse
	err    error
}

func (s *stubAttendanceService) Upsert(_ context.Context, _ attendance.UpsertAttendanceRequest) (attendance.RecordResponse, error) {
	return s.record, s.err
}

func (s *stubAttendanceService) GetDay(_ context.Context, _, _ string) (*attendance.RecordResponse, error) {
	return &s.record, s.err
}

func (s *stubAttendanceService) MonthView(_ context.Context, _, _ string) (attendance.MonthViewResponse, error) {
	return s.view, s.err
}

func (s *stubAttendanceService) Delete(_ context.Context, _ string) error { return s.err }

type stubReportService struct {
	wage report.WageSummary
	err  error
}

func (s *stubReportService) WageSummary(_ context.Context, _, _ string) (report.WageSummary, error) {
	return s.wage, s.err
}

func (s *stubReportService) WageSummarySoFar(_ context.Context, _, _ string) (report.WageSummary, error) {
	return s.wage, s.err
}

func (s *stubReportService) LeaveSummary(_ context.Context, _, _ string) (report.LeaveSummary, error) {
	return report.LeaveSummary{}, s.err
}

func (s *stubReportService) ExpenditureSummary(_ context.Context, _ string) (report.ExpenditureSummary, error) {
	return report.ExpenditureSummary{}, s.err
}

type stubAnomalyService struct {
	report anomaly.ReportResponse
	err    error
}

func (s *stubAnomalyService) RunDetection(_ context.Context, req anomaly.RunDetectionRequest) (anomaly.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return anomaly.ReportResponse{}, err
	}
	return s.report, s.err
}

func (s *stubAnomalyService) GetReport(_ context.Context, _, _ string) (anomaly.ReportResponse, error) {
	return s.report, s.err
}

func (s *stubAnomalyService) ListReports(_ context.Context) (anomaly.ListReportsResponse, error) {
	return anomaly.ListReportsResponse{}, s.err
}

type testServices struct {
	worker     *stubWorkerService
	attendance *stubAttendanceService
	report     *stubReportService
	anomaly    *stubAnomalyService
}

func newTestRouter(svcs testServices) http.Handler {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.LogLevel = "error"
	cfg.App.AllowedOrigins = []string{"http://localhost:3000"}

	return NewRouter(
		cfg,
		NewWorkerHandler(svcs.worker),
		NewAttendanceHandler(svcs.attendance),
		NewReportHandler(svcs.report),
		NewAnomalyHandler(svcs.anomaly),
	)
}

func defaultServices() testServices {
	return testServices{
		worker:     &stubWorkerService{},
		attendance: &stubAttendanceService{},
		report:     &stubReportService{},
		anomaly:    &stubAnomalyService{},
	}
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	return envelope
}

func TestCreateWorker_Created(t *testing.T) {
	svcs := defaultServices()
	svcs.worker.workerResp = worker.WorkerResponse{ID: "w-1", Name: "Asha"}
	router := newTestRouter(svcs)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/workers", map[string]any{
		"name":            "Asha",
		"assigned_salary": "3100",
		"join_date":       "2024-01-01",
	})

	assert.Equal(t, http.StatusCreated, rr.Code)
	envelope := decodeEnvelope(t, rr)
	assert.Equal(t, true, envelope["success"])
}

func TestCreateWorker_ValidationError(t *testing.T) {
	router := newTestRouter(defaultServices())

	rr := doJSON(t, router, http.MethodPost, "/api/v1/workers", map[string]any{
		"name": "",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	envelope := decodeEnvelope(t, rr)
	assert.Equal(t, false, envelope["success"])
}

func TestCreateWorker_MalformedBody(t *testing.T) {
	router := newTestRouter(defaultServices())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/workers", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetWorker_NotFound(t *testing.T) {
	svcs := defaultServices()
	svcs.worker.err = worker.ErrWorkerNotFound
	router := newTestRouter(svcs)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/workers/w-missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpsertAttendance_FutureDateRejected(t *testing.T) {
	svcs := defaultServices()
	svcs.attendance.err = attendance.ErrFutureDate
	router := newTestRouter(svcs)

	rr := doJSON(t, router, http.MethodPut, "/api/v1/workers/w-1/attendance", map[string]any{
		"date":   "2099-01-01",
		"status": "present",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpsertAttendance_BeforeJoinRejected(t *testing.T) {
	svcs := defaultServices()
	svcs.attendance.err = attendance.ErrBeforeJoinDate
	router := newTestRouter(svcs)

	rr := doJSON(t, router, http.MethodPut, "/api/v1/workers/w-1/attendance", map[string]any{
		"date":   "2020-01-01",
		"status": "present",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMonthView_RequiresMonthParam(t *testing.T) {
	router := newTestRouter(defaultServices())

	rr := doJSON(t, router, http.MethodGet, "/api/v1/workers/w-1/attendance", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/workers/w-1/attendance?month=January", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWageReport_Success(t *testing.T) {
	svcs := defaultServices()
	svcs.report.wage = report.WageSummary{
		WorkerID:   "w-1",
		NetPayable: decimal.NewFromInt(-500),
	}
	router := newTestRouter(svcs)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/reports/wages?worker_id=w-1&month=2024-01", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	envelope := decodeEnvelope(t, rr)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "-500", data["net_payable"], "negative net payable is surfaced as-is")
}

func TestWageReport_MissingParams(t *testing.T) {
	router := newTestRouter(defaultServices())

	rr := doJSON(t, router, http.MethodGet, "/api/v1/reports/wages?month=2024-01", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/reports/wages?worker_id=w-1", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAnomalyDetection_InFlightConflict(t *testing.T) {
	svcs := defaultServices()
	svcs.anomaly.err = anomaly.ErrDetectionInFlight
	router := newTestRouter(svcs)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/reports/anomalies", map[string]any{
		"worker_id": "w-1",
		"month":     "2024-01",
	})

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestAnomalyDetection_UpstreamFailure(t *testing.T) {
	svcs := defaultServices()
	svcs.anomaly.err = anomaly.ErrDetectionFailed
	router := newTestRouter(svcs)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/reports/anomalies", map[string]any{
		"worker_id": "w-1",
		"month":     "2024-01",
	})

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestAnomalyReport_NotFound(t *testing.T) {
	svcs := defaultServices()
	svcs.anomaly.err = anomaly.ErrReportNotFound
	router := newTestRouter(svcs)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/reports/anomalies?worker_id=w-1&month=2024-01", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteAttendance_NotFound(t *testing.T) {
	svcs := defaultServices()
	svcs.attendance.err = attendance.ErrRecordNotFound
	router := newTestRouter(svcs)

	rr := doJSON(t, router, http.MethodDelete, "/api/v1/attendance/r-missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
