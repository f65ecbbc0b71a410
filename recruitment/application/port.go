package application

import (
	"context"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/recruitment/job"
)

type Repository interface {
	// Create inserts a submitted application
	Create(ctx context.Context, application *Application) error

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// List retrieves all applications, most recent first
	List(ctx context.Context) ([]Application, error)

	UpdateStatus(ctx context.Context, id kernel.ApplicationID, status ApplicationStatus) error

	// UpdateResume back-fills the resume location after upload
	UpdateResume(ctx context.Context, id kernel.ApplicationID, path, filename string, url kernel.BucketURL) error

	// UpdateNotification writes the dispatch audit fields
	UpdateNotification(ctx context.Context, id kernel.ApplicationID, audit NotificationAudit) error

	Delete(ctx context.Context, id kernel.ApplicationID) error

	// DeleteMany removes the batch in one statement and returns the ids
	// that were actually deleted
	DeleteMany(ctx context.Context, ids []kernel.ApplicationID) ([]kernel.ApplicationID, error)
}

// JobLookup resolves the job snapshot at submission time
type JobLookup interface {
	GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error)
}

// NotificationTrigger starts dispatch for an application without waiting for it
type NotificationTrigger interface {
	Trigger(ctx context.Context, id kernel.ApplicationID) error
}
