package anomaly

import "context"

// Detector is the external collaborator that analyzes a month of attendance.
// The system treats it as an opaque remote procedure; prompt content, retries
// and rate limits are the collaborator's concern.
type Detector interface {
	Detect(ctx context.Context, input DetectionInput) (DetectionOutput, error)
}

// AnomalyService packages attendance for the external detector and stores the
// returned report.
type AnomalyService interface {
	// RunDetection sends the worker's stored attendance for the month to the
	// detector and stores the resulting report, replacing any prior report
	// for the same (worker, month). A concurrent run for the same pair is
	// rejected with ErrDetectionInFlight.
	RunDetection(ctx context.Context, req RunDetectionRequest) (ReportResponse, error)

	// GetReport retrieves the stored report for a worker and month
	GetReport(ctx context.Context, workerID, monthYear string) (ReportResponse, error)

	// ListReports retrieves stored reports, most recent first
	ListReports(ctx context.Context) (ListReportsResponse, error)
}
