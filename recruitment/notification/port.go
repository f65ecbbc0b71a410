package notification

import (
	"context"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/recruitment/application"
	"github.com/Abraxas-365/crewdesk/recruitment/settings"
)

// Mailer delivers a single message
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Queue carries dispatch jobs from submission to the workers
type Queue interface {
	Enqueue(ctx context.Context, job DispatchJob) error

	// Dequeue blocks up to timeout and returns nil when nothing arrived
	Dequeue(ctx context.Context, timeout time.Duration) (*DispatchJob, error)
}

// RecipientSource lists recipients that currently receive notifications
type RecipientSource interface {
	ListActive(ctx context.Context) ([]settings.EmailRecipient, error)
}

// ApplicationStore is the part of the application repository the
// dispatcher reads and writes back to
type ApplicationStore interface {
	GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error)
	UpdateNotification(ctx context.Context, id kernel.ApplicationID, audit application.NotificationAudit) error
}
