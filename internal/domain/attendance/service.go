package attendance

import "context"

// AttendanceService defines business logic for the attendance log.
//
// Future-dated records are never observable: reads purge them before
// returning, and writes reject them outright.
type AttendanceService interface {
	// Upsert creates or overwrites the record for (worker, date). Rejects
	// dates after today and dates before the worker's join date.
	Upsert(ctx context.Context, req UpsertAttendanceRequest) (RecordResponse, error)

	// GetDay retrieves the record for a worker on a given day, if any.
	GetDay(ctx context.Context, workerID, date string) (*RecordResponse, error)

	// MonthView returns one entry per calendar day of the month for the
	// worker, with editability flags and the partial-month salary stats.
	MonthView(ctx context.Context, workerID, month string) (MonthViewResponse, error)

	// Delete removes a single attendance record by ID
	Delete(ctx context.Context, recordID string) error
}
