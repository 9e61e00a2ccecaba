package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wagewise/wagewise-backend-go/internal/domain/worker"
	"github.com/wagewise/wagewise-backend-go/internal/pkg/database"
	"github.com/wagewise/wagewise-backend-go/internal/pkg/dateutil"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}

// Create implements worker.WorkerRepository.
func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (id, name, assigned_salary, join_date, left_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		w.ID,
		w.Name,
		w.AssignedSalary,
		w.JoinDate,
		w.LeftDate,
	).Scan(&w.CreatedAt, &w.UpdatedAt)

	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return w, nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, assigned_salary, join_date, left_date, created_at, updated_at
		FROM workers
		WHERE id = $1
	`

	w, err := scanWorker(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

// List implements worker.WorkerRepository.
func (r *workerRepository) List(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, assigned_salary, join_date, left_date, created_at, updated_at
		FROM workers
		ORDER BY name, created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workers: %w", err)
	}

	return workers, nil
}

// Update implements worker.WorkerRepository.
func (r *workerRepository) Update(ctx context.Context, w worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET name = $2, assigned_salary = $3, join_date = $4, left_date = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, w.ID, w.Name, w.AssignedSalary, w.JoinDate, w.LeftDate)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// Delete implements worker.WorkerRepository.
func (r *workerRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorker(row rowScanner) (worker.Worker, error) {
	var (
		w        worker.Worker
		joinDate time.Time
		leftDate *time.Time
	)

	if err := row.Scan(&w.ID, &w.Name, &w.AssignedSalary, &joinDate, &leftDate, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return worker.Worker{}, err
	}

	w.JoinDate = dateutil.FormatISODate(joinDate)
	if leftDate != nil {
		formatted := dateutil.FormatISODate(*leftDate)
		w.LeftDate = &formatted
	}

	return w, nil
}
