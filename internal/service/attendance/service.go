package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wagewise/wagewise-backend-go/internal/domain/attendance"
	"github.com/wagewise/wagewise-backend-go/internal/domain/worker"
	"github.com/wagewise/wagewise-backend-go/internal/pkg/dateutil"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	workerRepo     worker.WorkerRepository
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	workerRepo worker.WorkerRepository,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		workerRepo:     workerRepo,
		now:            time.Now,
	}
}

// WithNow overrides the clock. Used by tests to pin "today".
func (s *AttendanceServiceImpl) WithNow(now func() time.Time) *AttendanceServiceImpl {
	s.now = now
	return s
}

func (s *AttendanceServiceImpl) today() time.Time {
	return dateutil.Day(s.now())
}

func (s *AttendanceServiceImpl) Upsert(ctx context.Context, req attendance.UpsertAttendanceRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	date, err := dateutil.ParseISODate(req.Date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if date.After(s.today()) {
		return attendance.RecordResponse{}, attendance.ErrFutureDate
	}

	if join, err := dateutil.ParseISODate(w.JoinDate); err == nil && date.Before(dateutil.Day(join)) {
		return attendance.RecordResponse{}, attendance.ErrBeforeJoinDate
	}

	rec := attendance.Record{
		ID:         uuid.NewString(),
		WorkerID:   req.WorkerID,
		Date:       req.Date,
		Status:     req.Status,
		MoneyTaken: req.NormalizedMoneyTaken(),
	}

	stored, err := s.attendanceRepo.Upsert(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(stored), nil
}

func (s *AttendanceServiceImpl) GetDay(ctx context.Context, workerID, date string) (*attendance.RecordResponse, error) {
	if _, err := s.workerRepo.GetByID(ctx, workerID); err != nil {
		return nil, err
	}

	if err := s.purgeFuture(ctx, workerID); err != nil {
		return nil, err
	}

	rec, err := s.attendanceRepo.GetByWorkerAndDate(ctx, workerID, date)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	resp := toRecordResponse(*rec)
	return &resp, nil
}

func (s *AttendanceServiceImpl) MonthView(ctx context.Context, workerID, month string) (attendance.MonthViewResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return attendance.MonthViewResponse{}, err
	}

	monthStart, err := dateutil.ParseISOMonth(month)
	if err != nil {
		return attendance.MonthViewResponse{}, err
	}

	if err := s.purgeFuture(ctx, workerID); err != nil {
		return attendance.MonthViewResponse{}, err
	}

	records, err := s.attendanceRepo.ListByWorkerMonth(ctx, workerID, month)
	if err != nil {
		return attendance.MonthViewResponse{}, err
	}

	byDate := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		byDate[rec.Date] = rec
	}

	today := s.today()
	join, joinErr := dateutil.ParseISODate(w.JoinDate)

	var days []attendance.DayEntry
	for _, d := range dateutil.DatesInMonth(monthStart.Year(), monthStart.Month()) {
		entry := attendance.DayEntry{
			Date:    dateutil.FormatISODate(d),
			IsToday: dateutil.SameDay(d, today),
		}

		switch {
		case d.After(today):
			entry.Disabled = true
			entry.DisabledReason = attendance.DayDisabledFuture
		case joinErr == nil && d.Before(dateutil.Day(join)):
			entry.Disabled = true
			entry.DisabledReason = attendance.DayDisabledBeforeJoin
		}

		if rec, ok := byDate[entry.Date]; ok && !entry.Disabled {
			status := rec.Status
			money := rec.MoneyTaken
			entry.Status = &status
			entry.MoneyTaken = &money
		}

		days = append(days, entry)
	}

	return attendance.MonthViewResponse{
		WorkerID:   w.ID,
		WorkerName: w.Name,
		Month:      month,
		MonthLabel: dateutil.MonthLabel(monthStart),
		Days:       days,
		Stats:      s.monthStats(w, monthStart, records),
	}, nil
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, recordID string) error {
	return s.attendanceRepo.Delete(ctx, recordID)
}

// monthStats derives the partial-month progress block: the salary earnable
// over the effective days elapsed so far against the cash already taken.
func (s *AttendanceServiceImpl) monthStats(w worker.Worker, monthStart time.Time, records []attendance.Record) attendance.MonthStats {
	today := s.today()

	totalCalendarDays := len(dateutil.DatesInMonth(monthStart.Year(), monthStart.Month()))
	dailyRate := decimal.Zero
	if totalCalendarDays > 0 {
		dailyRate = w.AssignedSalary.Div(decimal.NewFromInt(int64(totalCalendarDays)))
	}

	daysSoFar := 0
	for _, d := range dateutil.EffectiveDays(monthStart, w.JoinDate, w.LeftDate) {
		if !d.After(today) {
			daysSoFar++
		}
	}

	totalTaken := decimal.Zero
	for _, rec := range records {
		if d, err := dateutil.ParseISODate(rec.Date); err == nil && !d.After(today) {
			totalTaken = totalTaken.Add(rec.MoneyTaken)
		}
	}

	earnable := dailyRate.Mul(decimal.NewFromInt(int64(daysSoFar)))

	return attendance.MonthStats{
		AssignedSalary:   w.AssignedSalary,
		DailyRate:        dailyRate,
		DaysCountedSoFar: daysSoFar,
		EarnableSoFar:    earnable,
		TotalMoneyTaken:  totalTaken,
		RemainingPayable: earnable.Sub(totalTaken),
	}
}

// purgeFuture enforces the standing invariant that attendance records never
// describe the future: any record dated after today is dropped before the
// worker's attendance is read or displayed.
func (s *AttendanceServiceImpl) purgeFuture(ctx context.Context, workerID string) error {
	_, err := s.attendanceRepo.DeleteFutureForWorker(ctx, workerID, dateutil.FormatISODate(s.today()))
	return err
}

func toRecordResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:         rec.ID,
		WorkerID:   rec.WorkerID,
		Date:       rec.Date,
		Status:     rec.Status,
		MoneyTaken: rec.MoneyTaken,
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  rec.UpdatedAt.Format(time.RFC3339),
	}
}
