package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

// Worker is a wage worker tracked by the system. AssignedSalary is the
// nominal full-month salary; the daily rate is derived from it per calendar
// month. JoinDate and LeftDate are day-granular "YYYY-MM-DD" strings; a nil
// LeftDate means the worker is still employed.
type Worker struct {
	ID             string
	Name           string
	AssignedSalary decimal.Decimal
	JoinDate       string
	LeftDate       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
