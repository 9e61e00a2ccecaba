package report

import (
	"github.com/shopspring/decimal"
)

// ========================================
// REPORT DTOs
// ========================================

// WageSummary is the per-worker, per-month wage derivation. NetPayable may be
// negative when a worker has taken more cash than earned; it is surfaced
// as-is, never clamped.
type WageSummary struct {
	WorkerID              string          `json:"worker_id"`
	WorkerName            string          `json:"worker_name"`
	Month                 string          `json:"month"` // YYYY-MM
	MonthLabel            string          `json:"month_label"`
	AssignedSalary        decimal.Decimal `json:"assigned_salary"`
	TotalCalendarDays     int             `json:"total_calendar_days"`
	DailyRate             decimal.Decimal `json:"daily_rate"`
	EffectiveDayCount     int             `json:"effective_day_count"`
	BaseEarnableSalary    decimal.Decimal `json:"base_earnable_salary"`
	PresentEquivalentDays float64         `json:"present_equivalent_days"`
	GrossSalary           decimal.Decimal `json:"gross_salary"`
	TotalMoneyTaken       decimal.Decimal `json:"total_money_taken"`
	NetPayable            decimal.Decimal `json:"net_payable"`
}

// Per-day leave calendar tags.
const (
	DayPresent       = "present"
	DayAbsent        = "absent"
	DayHalfDay       = "half-day"
	DayUnmarked      = "unmarked"
	DayPreEmployment = "pre-employment"
)

type LeaveCalendarDay struct {
	Date string `json:"date"`
	Tag  string `json:"tag"`
}

// LeaveSummary rolls attendance up into leave-day counts for one worker and
// month, plus a day-by-day tag list for calendar rendering.
type LeaveSummary struct {
	WorkerID              string             `json:"worker_id"`
	WorkerName            string             `json:"worker_name"`
	Month                 string             `json:"month"`
	MonthLabel            string             `json:"month_label"`
	CalendarDays          int                `json:"calendar_days"`
	EffectiveDayCount     int                `json:"effective_day_count"`
	FullAbsences          int                `json:"full_absences"`
	HalfDayLeaves         int                `json:"half_day_leaves"`
	TotalLeaveDays        float64            `json:"total_leave_days"`
	PresentEquivalentDays float64            `json:"present_equivalent_days"`
	Calendar              []LeaveCalendarDay `json:"calendar"`
}

// ExpenditureRow is one worker's line in the organization-wide monthly
// expenditure roll-up.
type ExpenditureRow struct {
	WorkerID              string          `json:"worker_id"`
	WorkerName            string          `json:"worker_name"`
	AssignedSalary        decimal.Decimal `json:"assigned_salary"`
	EffectiveDayCount     int             `json:"effective_day_count"`
	PresentEquivalentDays float64         `json:"present_equivalent_days"`
	GrossSalary           decimal.Decimal `json:"gross_salary"`
	TotalMoneyTaken       decimal.Decimal `json:"total_money_taken"`
	NetPayable            decimal.Decimal `json:"net_payable"`
}

// ExpenditureSummary totals the wage figures across all workers for a month.
type ExpenditureSummary struct {
	Month                        string           `json:"month"`
	MonthLabel                   string           `json:"month_label"`
	TotalAssignedSalaries        decimal.Decimal  `json:"total_assigned_salaries"`
	TotalCalculatedGrossSalaries decimal.Decimal  `json:"total_calculated_gross_salaries"`
	TotalMoneyTaken              decimal.Decimal  `json:"total_money_taken"`
	TotalNetPayableSalaries      decimal.Decimal  `json:"total_net_payable_salaries"`
	Workers                      []ExpenditureRow `json:"workers"`
}
