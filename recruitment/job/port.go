package job

import (
	"context"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
)

type Repository interface {
	// Create creates a new job
	Create(ctx context.Context, job *Job) error

	// Update updates an existing job
	Update(ctx context.Context, job *Job) error

	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// Delete removes the job; applications keep their title snapshot
	Delete(ctx context.Context, id kernel.JobID) error

	// List retrieves all jobs, most recent first
	List(ctx context.Context) ([]Job, error)

	// ListActive retrieves jobs shown on the careers page
	ListActive(ctx context.Context) ([]Job, error)

	CountApplications(ctx context.Context, id kernel.JobID) (int64, error)
}
