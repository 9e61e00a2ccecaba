package report

import "context"

// ReportService derives wage, leave and expenditure figures from the worker
// registry and the attendance log. All derivations are pure arithmetic over
// already-validated inputs; nothing here mutates state.
type ReportService interface {
	// WageSummary derives the full-month wage figures for a worker.
	WageSummary(ctx context.Context, workerID, month string) (WageSummary, error)

	// WageSummarySoFar is the partial-month variant: effective days and
	// attendance consideration are additionally bounded to dates up to and
	// including today.
	WageSummarySoFar(ctx context.Context, workerID, month string) (WageSummary, error)

	// LeaveSummary rolls attendance up into leave-day counts for one worker.
	LeaveSummary(ctx context.Context, workerID, month string) (LeaveSummary, error)

	// ExpenditureSummary totals wage figures across all workers for a month.
	ExpenditureSummary(ctx context.Context, month string) (ExpenditureSummary, error)
}
