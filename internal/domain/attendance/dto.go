package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/wagewise/wagewise-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type UpsertAttendanceRequest struct {
	WorkerID   string           `json:"-"`
	Date       string           `json:"date"`
	Status     string           `json:"status"`
	MoneyTaken *decimal.Decimal `json:"money_taken,omitempty"`
}

func (r *UpsertAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}

	if !validator.IsInSlice(r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, absent, half-day",
		})
	}

	if r.MoneyTaken != nil && validator.IsNegativeAmount(*r.MoneyTaken) {
		errs = append(errs, validator.ValidationError{
			Field:   "money_taken",
			Message: "money_taken must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// NormalizedMoneyTaken maps a missing amount to zero.
func (r *UpsertAttendanceRequest) NormalizedMoneyTaken() decimal.Decimal {
	if r.MoneyTaken == nil {
		return decimal.Zero
	}
	return *r.MoneyTaken
}

type RecordResponse struct {
	ID         string          `json:"id"`
	WorkerID   string          `json:"worker_id"`
	Date       string          `json:"date"`
	Status     string          `json:"status"`
	MoneyTaken decimal.Decimal `json:"money_taken"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

// Day disabling reasons surfaced in the month view. A disabled day accepts no
// status or money-taken input.
const (
	DayDisabledFuture     = "future"
	DayDisabledBeforeJoin = "before-join"
)

// DayEntry is one calendar day row of the month view: the stored record (if
// any) plus rendering/editability flags.
type DayEntry struct {
	Date           string           `json:"date"`
	Status         *string          `json:"status,omitempty"`
	MoneyTaken     *decimal.Decimal `json:"money_taken,omitempty"`
	IsToday        bool             `json:"is_today"`
	Disabled       bool             `json:"disabled"`
	DisabledReason string           `json:"disabled_reason,omitempty"`
}

// MonthStats is the partial-month progress block shown while logging
// attendance: what the worker could have earned so far against what has
// already been taken.
type MonthStats struct {
	AssignedSalary   decimal.Decimal `json:"assigned_salary"`
	DailyRate        decimal.Decimal `json:"daily_rate"`
	DaysCountedSoFar int             `json:"days_counted_so_far"`
	EarnableSoFar    decimal.Decimal `json:"earnable_so_far"`
	TotalMoneyTaken  decimal.Decimal `json:"total_money_taken"`
	RemainingPayable decimal.Decimal `json:"remaining_payable"`
}

type MonthViewResponse struct {
	WorkerID   string     `json:"worker_id"`
	WorkerName string     `json:"worker_name"`
	Month      string     `json:"month"` // YYYY-MM
	MonthLabel string     `json:"month_label"`
	Days       []DayEntry `json:"days"`
	Stats      MonthStats `json:"stats"`
}
