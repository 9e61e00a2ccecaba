package anomaly

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wagewise/wagewise-backend-go/internal/domain/anomaly"
	"github.com/wagewise/wagewise-backend-go/internal/domain/attendance"
	"github.com/wagewise/wagewise-backend-go/internal/domain/worker"
	"github.com/wagewise/wagewise-backend-go/internal/pkg/dateutil"
)

type AnomalyServiceImpl struct {
	anomalyRepo    anomaly.ReportRepository
	attendanceRepo attendance.AttendanceRepository
	workerRepo     worker.WorkerRepository
	detector       anomaly.Detector
	retention      int
	now            func() time.Time

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewAnomalyService(
	anomalyRepo anomaly.ReportRepository,
	attendanceRepo attendance.AttendanceRepository,
	workerRepo worker.WorkerRepository,
	detector anomaly.Detector,
	retention int,
) *AnomalyServiceImpl {
	return &AnomalyServiceImpl{
		anomalyRepo:    anomalyRepo,
		attendanceRepo: attendanceRepo,
		workerRepo:     workerRepo,
		detector:       detector,
		retention:      retention,
		now:            time.Now,
		inFlight:       make(map[string]bool),
	}
}

// WithNow overrides the clock. Used by tests to pin timestamps.
func (s *AnomalyServiceImpl) WithNow(now func() time.Time) *AnomalyServiceImpl {
	s.now = now
	return s
}

// attendanceEntry is the wire shape sent to the detector, matching the
// stored record minus internal identifiers. MoneyTakenAmount is omitted
// when no cash was taken.
type attendanceEntry struct {
	Date             string           `json:"date"`
	Status           string           `json:"status"`
	MoneyTakenAmount *decimal.Decimal `json:"moneyTakenAmount,omitempty"`
}

func (s *AnomalyServiceImpl) RunDetection(ctx context.Context, req anomaly.RunDetectionRequest) (anomaly.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return anomaly.ReportResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		return anomaly.ReportResponse{}, err
	}

	key := req.WorkerID + "|" + req.Month
	if !s.acquire(key) {
		return anomaly.ReportResponse{}, anomaly.ErrDetectionInFlight
	}
	defer s.release(key)

	// All stored records for the month go to the detector as-is,
	// unrestricted by the employment window.
	records, err := s.attendanceRepo.ListByWorkerMonth(ctx, req.WorkerID, req.Month)
	if err != nil {
		return anomaly.ReportResponse{}, err
	}

	entries := make([]attendanceEntry, 0, len(records))
	for _, rec := range records {
		entry := attendanceEntry{Date: rec.Date, Status: rec.Status}
		if !rec.MoneyTaken.IsZero() {
			money := rec.MoneyTaken
			entry.MoneyTakenAmount = &money
		}
		entries = append(entries, entry)
	}

	attendanceData, err := json.Marshal(entries)
	if err != nil {
		return anomaly.ReportResponse{}, fmt.Errorf("failed to encode attendance data: %w", err)
	}

	monthStart, err := dateutil.ParseISOMonth(req.Month)
	if err != nil {
		return anomaly.ReportResponse{}, err
	}

	output, err := s.detector.Detect(ctx, anomaly.DetectionInput{
		WorkerID:       req.WorkerID,
		Month:          dateutil.MonthLabel(monthStart),
		AttendanceData: string(attendanceData),
	})
	if err != nil {
		// Leave any previously stored report untouched.
		return anomaly.ReportResponse{}, fmt.Errorf("%w: %w", anomaly.ErrDetectionFailed, err)
	}

	report := anomaly.Report{
		WorkerID:    req.WorkerID,
		MonthYear:   req.Month,
		Anomalies:   output.Anomalies,
		Summary:     output.Summary,
		GeneratedAt: s.now(),
	}

	stored, err := s.anomalyRepo.Upsert(ctx, report)
	if err != nil {
		return anomaly.ReportResponse{}, err
	}

	if err := s.anomalyRepo.EvictBeyond(ctx, s.retention); err != nil {
		return anomaly.ReportResponse{}, err
	}

	return toReportResponse(stored), nil
}

func (s *AnomalyServiceImpl) GetReport(ctx context.Context, workerID, monthYear string) (anomaly.ReportResponse, error) {
	report, err := s.anomalyRepo.Get(ctx, workerID, monthYear)
	if err != nil {
		return anomaly.ReportResponse{}, err
	}

	return toReportResponse(report), nil
}

func (s *AnomalyServiceImpl) ListReports(ctx context.Context) (anomaly.ListReportsResponse, error) {
	reports, err := s.anomalyRepo.List(ctx)
	if err != nil {
		return anomaly.ListReportsResponse{}, err
	}

	resp := anomaly.ListReportsResponse{Reports: make([]anomaly.ReportResponse, 0, len(reports))}
	for _, report := range reports {
		resp.Reports = append(resp.Reports, toReportResponse(report))
	}

	return resp, nil
}

func (s *AnomalyServiceImpl) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[key] {
		return false
	}
	s.inFlight[key] = true
	return true
}

func (s *AnomalyServiceImpl) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}

func toReportResponse(report anomaly.Report) anomaly.ReportResponse {
	anomalies := report.Anomalies
	if anomalies == nil {
		anomalies = []string{}
	}
	return anomaly.ReportResponse{
		WorkerID:    report.WorkerID,
		MonthYear:   report.MonthYear,
		Anomalies:   anomalies,
		Summary:     report.Summary,
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
	}
}
