package report

import (
	"context"
	"time"

	"github.com/wagewise/wagewise-backend-go/internal/domain/attendance"
	"github.com/wagewise/wagewise-backend-go/internal/domain/report"
	"github.com/wagewise/wagewise-backend-go/internal/domain/worker"
	"github.com/wagewise/wagewise-backend-go/internal/pkg/dateutil"
)

type ReportServiceImpl struct {
	workerRepo     worker.WorkerRepository
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewReportService(
	workerRepo worker.WorkerRepository,
	attendanceRepo attendance.AttendanceRepository,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// WithNow overrides the clock. Used by tests to pin "today".
func (s *ReportServiceImpl) WithNow(now func() time.Time) *ReportServiceImpl {
	s.now = now
	return s
}

func (s *ReportServiceImpl) today() time.Time {
	return dateutil.Day(s.now())
}

func (s *ReportServiceImpl) WageSummary(ctx context.Context, workerID, month string) (report.WageSummary, error) {
	w, records, monthStart, err := s.loadInputs(ctx, workerID, month)
	if err != nil {
		return report.WageSummary{}, err
	}

	return ComputeWage(w, records, monthStart, nil), nil
}

func (s *ReportServiceImpl) WageSummarySoFar(ctx context.Context, workerID, month string) (report.WageSummary, error) {
	w, records, monthStart, err := s.loadInputs(ctx, workerID, month)
	if err != nil {
		return report.WageSummary{}, err
	}

	today := s.today()
	return ComputeWage(w, records, monthStart, &today), nil
}

func (s *ReportServiceImpl) LeaveSummary(ctx context.Context, workerID, month string) (report.LeaveSummary, error) {
	w, records, monthStart, err := s.loadInputs(ctx, workerID, month)
	if err != nil {
		return report.LeaveSummary{}, err
	}

	return ComputeLeave(w, records, monthStart), nil
}

func (s *ReportServiceImpl) ExpenditureSummary(ctx context.Context, month string) (report.ExpenditureSummary, error) {
	monthStart, err := dateutil.ParseISOMonth(month)
	if err != nil {
		return report.ExpenditureSummary{}, err
	}

	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return report.ExpenditureSummary{}, err
	}

	summary := report.ExpenditureSummary{
		Month:      month,
		MonthLabel: dateutil.MonthLabel(monthStart),
		Workers:    make([]report.ExpenditureRow, 0, len(workers)),
	}

	for _, w := range workers {
		records, err := s.monthRecords(ctx, w.ID, month)
		if err != nil {
			return report.ExpenditureSummary{}, err
		}

		wage := ComputeWage(w, records, monthStart, nil)

		summary.TotalAssignedSalaries = summary.TotalAssignedSalaries.Add(w.AssignedSalary)
		summary.TotalCalculatedGrossSalaries = summary.TotalCalculatedGrossSalaries.Add(wage.GrossSalary)
		summary.TotalMoneyTaken = summary.TotalMoneyTaken.Add(wage.TotalMoneyTaken)
		summary.TotalNetPayableSalaries = summary.TotalNetPayableSalaries.Add(wage.NetPayable)

		summary.Workers = append(summary.Workers, report.ExpenditureRow{
			WorkerID:              w.ID,
			WorkerName:            w.Name,
			AssignedSalary:        w.AssignedSalary,
			EffectiveDayCount:     wage.EffectiveDayCount,
			PresentEquivalentDays: wage.PresentEquivalentDays,
			GrossSalary:           wage.GrossSalary,
			TotalMoneyTaken:       wage.TotalMoneyTaken,
			NetPayable:            wage.NetPayable,
		})
	}

	return summary, nil
}

func (s *ReportServiceImpl) loadInputs(ctx context.Context, workerID, month string) (worker.Worker, []attendance.Record, time.Time, error) {
	monthStart, err := dateutil.ParseISOMonth(month)
	if err != nil {
		return worker.Worker{}, nil, time.Time{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return worker.Worker{}, nil, time.Time{}, err
	}

	records, err := s.monthRecords(ctx, workerID, month)
	if err != nil {
		return worker.Worker{}, nil, time.Time{}, err
	}

	return w, records, monthStart, nil
}

// monthRecords reads a worker's records for the month, purging any
// future-dated entries first so reports never see them.
func (s *ReportServiceImpl) monthRecords(ctx context.Context, workerID, month string) ([]attendance.Record, error) {
	if _, err := s.attendanceRepo.DeleteFutureForWorker(ctx, workerID, dateutil.FormatISODate(s.today())); err != nil {
		return nil, err
	}
	return s.attendanceRepo.ListByWorkerMonth(ctx, workerID, month)
}
