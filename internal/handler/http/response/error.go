package response

import (
	"errors"
	"net/http"

	"github.com/wagewise/wagewise-backend-go/internal/domain/anomaly"
	"github.com/wagewise/wagewise-backend-go/internal/domain/attendance"
	"github.com/wagewise/wagewise-backend-go/internal/domain/worker"
	"github.com/wagewise/wagewise-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrFutureDate):
		BadRequest(w, "Attendance cannot be logged for a future date", nil)
	case errors.Is(err, attendance.ErrBeforeJoinDate):
		BadRequest(w, "Attendance cannot be logged before the worker's join date", nil)

	// Anomaly domain errors
	case errors.Is(err, anomaly.ErrReportNotFound):
		NotFound(w, "Anomaly report not found")
	case errors.Is(err, anomaly.ErrDetectionInFlight):
		Conflict(w, "Anomaly detection already running for this worker and month")
	case errors.Is(err, anomaly.ErrDetectionFailed):
		BadGateway(w, "Anomaly detection service failed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
