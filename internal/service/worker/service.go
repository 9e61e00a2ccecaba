package worker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wagewise/wagewise-backend-go/internal/domain/attendance"
	"github.com/wagewise/wagewise-backend-go/internal/domain/worker"
	"github.com/wagewise/wagewise-backend-go/internal/pkg/database"
	"github.com/wagewise/wagewise-backend-go/internal/repository/postgresql"
)

type WorkerServiceImpl struct {
	db             *database.DB
	workerRepo     worker.WorkerRepository
	attendanceRepo attendance.AttendanceRepository
	runInTx        func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewWorkerService(
	db *database.DB,
	workerRepo worker.WorkerRepository,
	attendanceRepo attendance.AttendanceRepository,
) worker.WorkerService {
	s := &WorkerServiceImpl{
		db:             db,
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
	}
	s.runInTx = func(ctx context.Context, fn func(txCtx context.Context) error) error {
		if db == nil {
			return fn(ctx)
		}
		return postgresql.WithTransaction(ctx, db, fn)
	}
	return s
}

func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	newWorker := worker.Worker{
		ID:             uuid.NewString(),
		Name:           req.Name,
		AssignedSalary: req.AssignedSalary,
		JoinDate:       req.JoinDate,
		LeftDate:       req.NormalizedLeftDate(),
	}

	created, err := s.workerRepo.Create(ctx, newWorker)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toWorkerResponse(created), nil
}

func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toWorkerResponse(w), nil
}

func (s *WorkerServiceImpl) ListWorkers(ctx context.Context) (worker.ListWorkersResponse, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return worker.ListWorkersResponse{}, err
	}

	resp := worker.ListWorkersResponse{Workers: make([]worker.WorkerResponse, 0, len(workers))}
	for _, w := range workers {
		resp.Workers = append(resp.Workers, toWorkerResponse(w))
	}

	return resp, nil
}

func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	existing, err := s.workerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	existing.Name = req.Name
	existing.AssignedSalary = req.AssignedSalary
	existing.JoinDate = req.JoinDate
	existing.LeftDate = req.NormalizedLeftDate()

	if err := s.workerRepo.Update(ctx, existing); err != nil {
		return worker.WorkerResponse{}, err
	}

	updated, err := s.workerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toWorkerResponse(updated), nil
}

// DeleteWorker removes the worker and its attendance records in one
// transaction: no intermediate state has attendance rows referencing a
// missing worker. Anomaly reports are keyed independently and stay.
func (s *WorkerServiceImpl) DeleteWorker(ctx context.Context, id string) error {
	if _, err := s.workerRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.runInTx(ctx, func(txCtx context.Context) error {
		if err := s.attendanceRepo.DeleteByWorker(txCtx, id); err != nil {
			return err
		}
		return s.workerRepo.Delete(txCtx, id)
	})
}

func toWorkerResponse(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:             w.ID,
		Name:           w.Name,
		AssignedSalary: w.AssignedSalary,
		JoinDate:       w.JoinDate,
		LeftDate:       w.LeftDate,
		CreatedAt:      w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      w.UpdatedAt.Format(time.RFC3339),
	}
}
