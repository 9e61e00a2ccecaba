// Package legacyimport loads the browser-export JSON produced by the previous
// frontend-only version of the system and writes it through the repositories.
//
// The export consists of three JSON arrays (workers, attendance records and
// anomaly reports) whose shapes predate the current schema. Importing applies
// the schema migrations in place:
//
//   - workers with a missing or blank join date get today's date
//   - a blank left date becomes "not set"
//   - the retired "per-day-wage-taken" status becomes "present", with the
//     legacy perDayWageAmount carried over as money taken
//   - any unrecognized status becomes "present"
//   - duplicate (workerId, date) attendance entries collapse last-wins
package legacyimport

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wagewise/wagewise-backend-go/internal/domain/anomaly"
	"github.com/wagewise/wagewise-backend-go/internal/domain/attendance"
	"github.com/wagewise/wagewise-backend-go/internal/domain/worker"
	"github.com/wagewise/wagewise-backend-go/internal/pkg/dateutil"
)

// Legacy export shapes. Field names match the browser export verbatim.
type legacyWorker struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	AssignedSalary float64 `json:"assignedSalary"`
	JoinDate       string  `json:"joinDate"`
	LeftDate       *string `json:"leftDate"`
}

type legacyAttendanceRecord struct {
	ID               string   `json:"id"`
	WorkerID         string   `json:"workerId"`
	Date             string   `json:"date"`
	Status           string   `json:"status"`
	PerDayWageAmount *float64 `json:"perDayWageAmount"`
	MoneyTakenAmount *float64 `json:"moneyTakenAmount"`
}

type legacyAnomalyReport struct {
	WorkerID    string   `json:"workerId"`
	MonthYear   string   `json:"monthYear"`
	Anomalies   []string `json:"anomalies"`
	Summary     string   `json:"summary"`
	GeneratedAt string   `json:"generatedAt"`
}

// Summary reports what an import run did.
type Summary struct {
	WorkersImported    int
	RecordsImported    int
	RecordsCollapsed   int
	RecordsOrphaned    int
	StatusesMigrated   int
	JoinDatesDefaulted int
	ReportsImported    int
}

type Importer struct {
	workerRepo     worker.WorkerRepository
	attendanceRepo attendance.AttendanceRepository
	anomalyRepo    anomaly.ReportRepository
	retention      int
	now            func() time.Time
}

func NewImporter(
	workerRepo worker.WorkerRepository,
	attendanceRepo attendance.AttendanceRepository,
	anomalyRepo anomaly.ReportRepository,
	retention int,
) *Importer {
	return &Importer{
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		anomalyRepo:    anomalyRepo,
		retention:      retention,
		now:            time.Now,
	}
}

// WithNow overrides the clock. Used by tests to pin the join-date default.
func (imp *Importer) WithNow(now func() time.Time) *Importer {
	imp.now = now
	return imp
}

// Run imports the three export arrays. Workers go first so attendance rows
// can reference them; attendance entries pointing at a worker absent from the
// export are skipped and counted as orphaned.
func (imp *Importer) Run(ctx context.Context, workersJSON, recordsJSON, reportsJSON []byte) (Summary, error) {
	var summary Summary

	workers, err := parseArray[legacyWorker](workersJSON, "workers")
	if err != nil {
		return summary, err
	}
	records, err := parseArray[legacyAttendanceRecord](recordsJSON, "attendance records")
	if err != nil {
		return summary, err
	}
	reports, err := parseArray[legacyAnomalyReport](reportsJSON, "anomaly reports")
	if err != nil {
		return summary, err
	}

	today := dateutil.FormatISODate(dateutil.Day(imp.now()))

	knownWorkers := make(map[string]bool, len(workers))
	for _, lw := range workers {
		migrated := imp.migrateWorker(lw, today, &summary)
		if _, err := imp.workerRepo.Create(ctx, migrated); err != nil {
			return summary, fmt.Errorf("failed to import worker %s: %w", migrated.ID, err)
		}
		knownWorkers[migrated.ID] = true
		summary.WorkersImported++
	}

	for _, rec := range collapseDuplicates(records, &summary) {
		if !knownWorkers[rec.WorkerID] {
			summary.RecordsOrphaned++
			continue
		}
		migrated := migrateRecord(rec, &summary)
		if _, err := imp.attendanceRepo.Upsert(ctx, migrated); err != nil {
			return summary, fmt.Errorf("failed to import attendance record %s: %w", migrated.ID, err)
		}
		summary.RecordsImported++
	}

	// Newest reports first so eviction keeps the right ones.
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].GeneratedAt > reports[j].GeneratedAt
	})
	if len(reports) > imp.retention {
		reports = reports[:imp.retention]
	}
	for _, lr := range reports {
		generatedAt, err := time.Parse(time.RFC3339, lr.GeneratedAt)
		if err != nil {
			generatedAt = imp.now()
		}
		report := anomaly.Report{
			WorkerID:    lr.WorkerID,
			MonthYear:   lr.MonthYear,
			Anomalies:   lr.Anomalies,
			Summary:     lr.Summary,
			GeneratedAt: generatedAt,
		}
		if _, err := imp.anomalyRepo.Upsert(ctx, report); err != nil {
			return summary, fmt.Errorf("failed to import anomaly report for worker %s month %s: %w", lr.WorkerID, lr.MonthYear, err)
		}
		summary.ReportsImported++
	}

	return summary, nil
}

func (imp *Importer) migrateWorker(lw legacyWorker, today string, summary *Summary) worker.Worker {
	id := lw.ID
	if id == "" {
		id = uuid.NewString()
	}

	joinDate := lw.JoinDate
	if _, err := dateutil.ParseISODate(joinDate); err != nil {
		joinDate = today
		summary.JoinDatesDefaulted++
	}

	var leftDate *string
	if lw.LeftDate != nil && *lw.LeftDate != "" {
		leftDate = lw.LeftDate
	}

	return worker.Worker{
		ID:             id,
		Name:           lw.Name,
		AssignedSalary: decimal.NewFromFloat(lw.AssignedSalary),
		JoinDate:       joinDate,
		LeftDate:       leftDate,
	}
}

func migrateRecord(lr legacyAttendanceRecord, summary *Summary) attendance.Record {
	id := lr.ID
	if id == "" {
		id = uuid.NewString()
	}

	status := lr.Status
	if status == "per-day-wage-taken" || !isValidStatus(status) {
		status = attendance.StatusPresent
		summary.StatusesMigrated++
	}

	moneyTaken := decimal.Zero
	switch {
	case lr.MoneyTakenAmount != nil:
		moneyTaken = decimal.NewFromFloat(*lr.MoneyTakenAmount)
	case lr.PerDayWageAmount != nil:
		moneyTaken = decimal.NewFromFloat(*lr.PerDayWageAmount)
	}

	return attendance.Record{
		ID:         id,
		WorkerID:   lr.WorkerID,
		Date:       lr.Date,
		Status:     status,
		MoneyTaken: moneyTaken,
	}
}

// collapseDuplicates keeps the last entry for each (workerId, date) pair,
// preserving first-seen order.
func collapseDuplicates(records []legacyAttendanceRecord, summary *Summary) []legacyAttendanceRecord {
	index := make(map[string]int, len(records))
	out := make([]legacyAttendanceRecord, 0, len(records))
	for _, rec := range records {
		key := rec.WorkerID + "|" + rec.Date
		if i, seen := index[key]; seen {
			out[i] = rec
			summary.RecordsCollapsed++
			continue
		}
		index[key] = len(out)
		out = append(out, rec)
	}
	return out
}

func isValidStatus(status string) bool {
	for _, valid := range attendance.ValidStatuses {
		if status == valid {
			return true
		}
	}
	return false
}

func parseArray[T any](data []byte, what string) ([]T, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse %s export: %w", what, err)
	}
	return out, nil
}
