package postgresql

import (
	"context"
	"fmt"

	"github.com/wagewise/wagewise-backend-go/internal/pkg/database"
)

// EnsureSchema creates the three collections if they do not exist yet.
// Run once at startup.
//
// attendance_records carries a unique (worker_id, date) index: the upsert
// path relies on it. anomaly_reports has no foreign key to workers; reports
// are keyed independently and survive worker deletion.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS workers (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			assigned_salary NUMERIC(14,2) NOT NULL,
			join_date DATE NOT NULL,
			left_date DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS attendance_records (
			id UUID PRIMARY KEY,
			worker_id UUID NOT NULL REFERENCES workers(id),
			date DATE NOT NULL,
			status TEXT NOT NULL CHECK (status IN ('present', 'absent', 'half-day')),
			money_taken NUMERIC(14,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (worker_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS anomaly_reports (
			worker_id UUID NOT NULL,
			month_year TEXT NOT NULL,
			anomalies JSONB NOT NULL DEFAULT '[]'::jsonb,
			summary TEXT NOT NULL,
			generated_at TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (worker_id, month_year)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
