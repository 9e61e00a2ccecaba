package anomaly

import "context"

// ReportRepository defines data access methods for stored anomaly reports.
type ReportRepository interface {
	// Upsert stores a report, replacing any prior report for the same
	// (worker_id, month_year) pair.
	Upsert(ctx context.Context, report Report) (Report, error)

	// Get retrieves the stored report for a worker and month
	Get(ctx context.Context, workerID, monthYear string) (Report, error)

	// List retrieves all stored reports, most recently generated first
	List(ctx context.Context) ([]Report, error)

	// EvictBeyond removes the oldest reports so that at most keep remain
	// across all workers and months.
	EvictBeyond(ctx context.Context, keep int) error
}
