package worker

import "context"

// WorkerService defines business logic for the worker registry.
type WorkerService interface {
	// CreateWorker registers a new worker, assigning an identifier and
	// normalizing a blank left date to "not set".
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)

	// GetWorker retrieves a single worker by ID
	GetWorker(ctx context.Context, id string) (WorkerResponse, error)

	// ListWorkers retrieves all workers
	ListWorkers(ctx context.Context) (ListWorkersResponse, error)

	// UpdateWorker replaces the stored worker record by ID
	UpdateWorker(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)

	// DeleteWorker removes the worker and every attendance record that
	// references it, atomically. Stored anomaly reports are keyed
	// independently and are not removed.
	DeleteWorker(ctx context.Context, id string) error
}
