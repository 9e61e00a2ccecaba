package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wagewise/wagewise-backend-go/internal/domain/attendance"
	"github.com/wagewise/wagewise-backend-go/internal/domain/report"
	"github.com/wagewise/wagewise-backend-go/internal/domain/worker"
	"github.com/wagewise/wagewise-backend-go/internal/pkg/dateutil"
)

// The derivation rules, as pure arithmetic over already-loaded inputs:
//
//	dailyRate      = assignedSalary / calendar days in month
//	effectiveDays  = month ∩ [joinDate, leftDate]
//	presentEquiv   = Σ 1.0 per present, 0.5 per half-day over effective days
//	grossSalary    = dailyRate × presentEquiv
//	netPayable     = grossSalary − money taken over effective days
//
// Unlogged days earn nothing: gross salary only credits explicitly logged
// presence. Records outside the employment window are ignored even if stored.
// netPayable is deliberately allowed to go negative.

// ComputeWage derives the wage figures for one worker and month. When upTo is
// non-nil, effective days and attendance consideration are bounded to dates
// on or before it (the "stats so far" variant).
func ComputeWage(w worker.Worker, records []attendance.Record, monthStart time.Time, upTo *time.Time) report.WageSummary {
	calendarDays := dateutil.DatesInMonth(monthStart.Year(), monthStart.Month())
	totalCalendarDays := len(calendarDays)

	dailyRate := decimal.Zero
	if totalCalendarDays > 0 {
		dailyRate = w.AssignedSalary.Div(decimal.NewFromInt(int64(totalCalendarDays)))
	}

	effective := effectiveDaySet(w, monthStart, upTo)

	presentEquivalent := 0.0
	totalTaken := decimal.Zero
	for _, rec := range records {
		if !effective[rec.Date] {
			continue
		}
		switch rec.Status {
		case attendance.StatusPresent:
			presentEquivalent += 1.0
		case attendance.StatusHalfDay:
			presentEquivalent += 0.5
		}
		totalTaken = totalTaken.Add(rec.MoneyTaken)
	}

	effectiveCount := len(effective)
	gross := dailyRate.Mul(decimal.NewFromFloat(presentEquivalent))

	return report.WageSummary{
		WorkerID:              w.ID,
		WorkerName:            w.Name,
		Month:                 dateutil.ISOMonth(monthStart),
		MonthLabel:            dateutil.MonthLabel(monthStart),
		AssignedSalary:        w.AssignedSalary,
		TotalCalendarDays:     totalCalendarDays,
		DailyRate:             dailyRate,
		EffectiveDayCount:     effectiveCount,
		BaseEarnableSalary:    dailyRate.Mul(decimal.NewFromInt(int64(effectiveCount))),
		PresentEquivalentDays: presentEquivalent,
		GrossSalary:           gross,
		TotalMoneyTaken:       totalTaken,
		NetPayable:            gross.Sub(totalTaken),
	}
}

// ComputeLeave rolls the month's attendance up into leave-day counts and the
// per-day calendar tags.
func ComputeLeave(w worker.Worker, records []attendance.Record, monthStart time.Time) report.LeaveSummary {
	calendarDays := dateutil.DatesInMonth(monthStart.Year(), monthStart.Month())
	effective := effectiveDaySet(w, monthStart, nil)

	byDate := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		byDate[rec.Date] = rec
	}

	fullAbsences := 0
	halfDayLeaves := 0
	presentEquivalent := 0.0
	calendar := make([]report.LeaveCalendarDay, 0, len(calendarDays))

	for _, d := range calendarDays {
		iso := dateutil.FormatISODate(d)

		if !effective[iso] {
			calendar = append(calendar, report.LeaveCalendarDay{Date: iso, Tag: report.DayPreEmployment})
			continue
		}

		rec, ok := byDate[iso]
		if !ok {
			calendar = append(calendar, report.LeaveCalendarDay{Date: iso, Tag: report.DayUnmarked})
			continue
		}

		switch rec.Status {
		case attendance.StatusAbsent:
			fullAbsences++
			calendar = append(calendar, report.LeaveCalendarDay{Date: iso, Tag: report.DayAbsent})
		case attendance.StatusHalfDay:
			halfDayLeaves++
			presentEquivalent += 0.5
			calendar = append(calendar, report.LeaveCalendarDay{Date: iso, Tag: report.DayHalfDay})
		default:
			presentEquivalent += 1.0
			calendar = append(calendar, report.LeaveCalendarDay{Date: iso, Tag: report.DayPresent})
		}
	}

	return report.LeaveSummary{
		WorkerID:              w.ID,
		WorkerName:            w.Name,
		Month:                 dateutil.ISOMonth(monthStart),
		MonthLabel:            dateutil.MonthLabel(monthStart),
		CalendarDays:          len(calendarDays),
		EffectiveDayCount:     len(effective),
		FullAbsences:          fullAbsences,
		HalfDayLeaves:         halfDayLeaves,
		TotalLeaveDays:        float64(fullAbsences) + 0.5*float64(halfDayLeaves),
		PresentEquivalentDays: presentEquivalent,
		Calendar:              calendar,
	}
}

func effectiveDaySet(w worker.Worker, monthStart time.Time, upTo *time.Time) map[string]bool {
	set := make(map[string]bool)
	for _, d := range dateutil.EffectiveDays(monthStart, w.JoinDate, w.LeftDate) {
		if upTo != nil && d.After(*upTo) {
			continue
		}
		set[dateutil.FormatISODate(d)] = true
	}
	return set
}
