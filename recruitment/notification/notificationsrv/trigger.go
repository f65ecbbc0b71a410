package notificationsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/recruitment/application"
	"github.com/Abraxas-365/crewdesk/recruitment/notification"
)

// QueueTrigger hands dispatch to the worker pool through the queue
type QueueTrigger struct {
	queue notification.Queue
}

func NewQueueTrigger(queue notification.Queue) *QueueTrigger {
	return &QueueTrigger{queue: queue}
}

var _ application.NotificationTrigger = (*QueueTrigger)(nil)

func (t *QueueTrigger) Trigger(ctx context.Context, id kernel.ApplicationID) error {
	return t.queue.Enqueue(ctx, notification.DispatchJob{
		ApplicationID: id,
		EnqueuedAt:    time.Now().UTC(),
	})
}
