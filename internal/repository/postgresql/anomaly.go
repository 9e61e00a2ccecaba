package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wagewise/wagewise-backend-go/internal/domain/anomaly"
	"github.com/wagewise/wagewise-backend-go/internal/pkg/database"
)

type anomalyRepository struct {
	db *database.DB
}

func NewAnomalyRepository(db *database.DB) anomaly.ReportRepository {
	return &anomalyRepository{db: db}
}

// Upsert implements anomaly.ReportRepository. A new run replaces the prior
// report for the same (worker_id, month_year).
func (r *anomalyRepository) Upsert(ctx context.Context, report anomaly.Report) (anomaly.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO anomaly_reports (worker_id, month_year, anomalies, summary, generated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (worker_id, month_year) DO UPDATE
		SET anomalies = EXCLUDED.anomalies, summary = EXCLUDED.summary, generated_at = EXCLUDED.generated_at
	`

	if _, err := q.Exec(ctx, query,
		report.WorkerID,
		report.MonthYear,
		report.Anomalies,
		report.Summary,
		report.GeneratedAt,
	); err != nil {
		return anomaly.Report{}, fmt.Errorf("failed to store anomaly report: %w", err)
	}

	return report, nil
}

// Get implements anomaly.ReportRepository.
func (r *anomalyRepository) Get(ctx context.Context, workerID, monthYear string) (anomaly.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT worker_id, month_year, anomalies, summary, generated_at
		FROM anomaly_reports
		WHERE worker_id = $1 AND month_year = $2
	`

	var report anomaly.Report
	err := q.QueryRow(ctx, query, workerID, monthYear).Scan(
		&report.WorkerID, &report.MonthYear, &report.Anomalies, &report.Summary, &report.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return anomaly.Report{}, anomaly.ErrReportNotFound
		}
		return anomaly.Report{}, fmt.Errorf("failed to get anomaly report: %w", err)
	}

	return report, nil
}

// List implements anomaly.ReportRepository.
func (r *anomalyRepository) List(ctx context.Context) ([]anomaly.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT worker_id, month_year, anomalies, summary, generated_at
		FROM anomaly_reports
		ORDER BY generated_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list anomaly reports: %w", err)
	}
	defer rows.Close()

	var reports []anomaly.Report
	for rows.Next() {
		var report anomaly.Report
		if err := rows.Scan(&report.WorkerID, &report.MonthYear, &report.Anomalies, &report.Summary, &report.GeneratedAt); err != nil {
			return nil, fmt.Errorf("failed to scan anomaly report: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate anomaly reports: %w", err)
	}

	return reports, nil
}

// EvictBeyond implements anomaly.ReportRepository.
func (r *anomalyRepository) EvictBeyond(ctx context.Context, keep int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM anomaly_reports
		WHERE (worker_id, month_year) NOT IN (
			SELECT worker_id, month_year
			FROM anomaly_reports
			ORDER BY generated_at DESC
			LIMIT $1
		)
	`

	if _, err := q.Exec(ctx, query, keep); err != nil {
		return fmt.Errorf("failed to evict anomaly reports: %w", err)
	}

	return nil
}
