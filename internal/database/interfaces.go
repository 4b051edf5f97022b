package database

import (
	"context"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/models"
)

// JobListCache defines the interface for caching the full job listing
type JobListCache interface {
	// GetJobList returns the cached listing; found is false on a cache miss
	GetJobList(ctx context.Context) (jobs []models.Job, found bool, err error)
	// JobListVersion returns the current generation of the listing. Read it
	// before loading from the store and pass it back to SetJobList.
	JobListVersion(ctx context.Context) (int64, error)
	// SetJobList stores jobs only if no invalidation happened since version
	// was read; a stale fill is dropped without error
	SetJobList(ctx context.Context, version int64, jobs []models.Job) error
	// InvalidateJobList drops the listing and advances the version
	InvalidateJobList(ctx context.Context) error
	Close() error
}
