package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance statuses. At most one record exists per (worker, date) pair;
// writing again for the same pair overwrites status and money taken in place.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusHalfDay = "half-day"
)

var ValidStatuses = []string{StatusPresent, StatusAbsent, StatusHalfDay}

// Record is one worker's attendance entry for one calendar day. MoneyTaken is
// the cash advance disbursed on that day, independent of attendance status.
type Record struct {
	ID         string
	WorkerID   string
	Date       string // YYYY-MM-DD
	Status     string
	MoneyTaken decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
