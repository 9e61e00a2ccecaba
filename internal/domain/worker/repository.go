package worker

import "context"

// WorkerRepository defines data access methods for worker profiles.
type WorkerRepository interface {
	// Create persists a new worker
	Create(ctx context.Context, w Worker) (Worker, error)

	// GetByID retrieves a worker by ID
	GetByID(ctx context.Context, id string) (Worker, error)

	// List retrieves all workers ordered by name
	List(ctx context.Context) ([]Worker, error)

	// Update replaces the stored worker by ID
	Update(ctx context.Context, w Worker) error

	// Delete removes a worker. Cascading removal of the worker's attendance
	// records is orchestrated by the service inside one transaction.
	Delete(ctx context.Context, id string) error
}
