package anomaly

import (
	"github.com/wagewise/wagewise-backend-go/internal/pkg/validator"
)

// ========================================
// ANOMALY DETECTION DTOs
// ========================================

// DetectionInput is the contract sent to the external detection service:
// AttendanceData carries a JSON-encoded array of
// {date, status, moneyTakenAmount?} entries for the worker and month.
type DetectionInput struct {
	WorkerID       string `json:"workerId"`
	Month          string `json:"month"` // human label, e.g. "January 2024"
	AttendanceData string `json:"attendanceData"`
}

// DetectionOutput is the contract consumed from the external service.
type DetectionOutput struct {
	Anomalies []string `json:"anomalies" jsonschema:"description=List of anomalies detected in the attendance data"`
	Summary   string   `json:"summary" jsonschema:"description=A summary of the analysis including any detected anomalies"`
}

type RunDetectionRequest struct {
	WorkerID string `json:"worker_id"`
	Month    string `json:"month"` // YYYY-MM
}

func (r *RunDetectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be a valid YYYY-MM value",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReportResponse struct {
	WorkerID    string   `json:"worker_id"`
	MonthYear   string   `json:"month_year"`
	Anomalies   []string `json:"anomalies"`
	Summary     string   `json:"summary"`
	GeneratedAt string   `json:"generated_at"`
}

type ListReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
}
