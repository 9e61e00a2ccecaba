package anomaly

import "errors"

// Anomaly detection domain errors
var (
	ErrReportNotFound = errors.New("anomaly report not found")

	// ErrDetectionFailed wraps a failure of the external detection service.
	// No stored report is touched when detection fails.
	ErrDetectionFailed = errors.New("anomaly detection failed")

	// ErrDetectionInFlight is returned when a detection run is requested for
	// a (worker, month) pair that already has one in progress.
	ErrDetectionInFlight = errors.New("anomaly detection already in progress for this worker and month")
)
