package db

import "context"

// WorkerStore defines read-only access to the platform's worker records
type WorkerStore interface {
	GetWorkers(ctx context.Context) ([]Worker, error)
}
