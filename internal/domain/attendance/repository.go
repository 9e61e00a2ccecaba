package attendance

import "context"

// AttendanceRepository defines data access methods for attendance records.
// Records are keyed by (worker_id, date); Upsert relies on that key.
type AttendanceRepository interface {
	// Upsert inserts a record or, when one already exists for the same
	// (worker_id, date), overwrites its status and money taken in place,
	// preserving the original record ID.
	Upsert(ctx context.Context, rec Record) (Record, error)

	// GetByID retrieves a record by its identifier
	GetByID(ctx context.Context, id string) (Record, error)

	// GetByWorkerAndDate retrieves the record for a worker on a specific day,
	// or nil when no record exists.
	GetByWorkerAndDate(ctx context.Context, workerID, date string) (*Record, error)

	// ListByWorkerMonth retrieves all records for a worker whose date falls
	// in the given month, ordered by date ascending.
	ListByWorkerMonth(ctx context.Context, workerID, month string) ([]Record, error)

	// Delete removes a single record by ID
	Delete(ctx context.Context, id string) error

	// DeleteByWorker removes every record referencing the worker. Used by the
	// worker cascade delete.
	DeleteByWorker(ctx context.Context, workerID string) error

	// DeleteFutureForWorker removes every record for the worker dated
	// strictly after the given day. Returns the number of records removed.
	DeleteFutureForWorker(ctx context.Context, workerID, today string) (int64, error)
}
