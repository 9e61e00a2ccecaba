package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wagewise/wagewise-backend-go/internal/domain/attendance"
	"github.com/wagewise/wagewise-backend-go/internal/pkg/database"
	"github.com/wagewise/wagewise-backend-go/internal/pkg/dateutil"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.AttendanceRepository. The unique
// (worker_id, date) index resolves conflicts: an existing record keeps its
// id and created_at, only status and money_taken are overwritten.
func (r *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, worker_id, date, status, money_taken)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (worker_id, date) DO UPDATE
		SET status = EXCLUDED.status, money_taken = EXCLUDED.money_taken, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.WorkerID,
		rec.Date,
		rec.Status,
		rec.MoneyTaken,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return rec, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, date, status, money_taken, created_at, updated_at
		FROM attendance_records
		WHERE id = $1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return rec, nil
}

// GetByWorkerAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByWorkerAndDate(ctx context.Context, workerID, date string) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, date, status, money_taken, created_at, updated_at
		FROM attendance_records
		WHERE worker_id = $1 AND date = $2
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, workerID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by worker and date: %w", err)
	}

	return &rec, nil
}

// ListByWorkerMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByWorkerMonth(ctx context.Context, workerID, month string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	monthStart, err := dateutil.ParseISOMonth(month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}

	query := `
		SELECT id, worker_id, date, status, money_taken, created_at, updated_at
		FROM attendance_records
		WHERE worker_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query,
		workerID,
		dateutil.FormatISODate(monthStart),
		dateutil.FormatISODate(monthStart.AddDate(0, 1, 0)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// DeleteByWorker implements attendance.AttendanceRepository.
func (r *attendanceRepository) DeleteByWorker(ctx context.Context, workerID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE worker_id = $1`, workerID); err != nil {
		return fmt.Errorf("failed to delete attendance for worker: %w", err)
	}

	return nil
}

// DeleteFutureForWorker implements attendance.AttendanceRepository.
func (r *attendanceRepository) DeleteFutureForWorker(ctx context.Context, workerID, today string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM attendance_records WHERE worker_id = $1 AND date > $2`,
		workerID, today,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to purge future attendance: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanRecord(row rowScanner) (attendance.Record, error) {
	var (
		rec  attendance.Record
		date time.Time
	)

	if err := row.Scan(&rec.ID, &rec.WorkerID, &date, &rec.Status, &rec.MoneyTaken, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return attendance.Record{}, err
	}

	rec.Date = dateutil.FormatISODate(date)
	return rec, nil
}
