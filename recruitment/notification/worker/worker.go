package worker

import (
	"context"
	"sync"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/pkg/logx"
	"github.com/Abraxas-365/crewdesk/recruitment/notification"
)

const dequeueTimeout = 5 * time.Second

// Dispatcher runs one notification
type Dispatcher interface {
	Dispatch(ctx context.Context, id kernel.ApplicationID) (*notification.DispatchResult, error)
}

// NotificationWorker drains the dispatch queue. Failed jobs are logged and
// dropped.
type NotificationWorker struct {
	dispatcher Dispatcher
	queue      notification.Queue
	workers    int
	wg         sync.WaitGroup
}

func NewNotificationWorker(dispatcher Dispatcher, queue notification.Queue, workers int) *NotificationWorker {
	return &NotificationWorker{
		dispatcher: dispatcher,
		queue:      queue,
		workers:    max(workers, 1),
	}
}

// Start launches the pool. Workers stop when ctx is cancelled.
func (w *NotificationWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d notification workers", w.workers)

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i)
	}
}

// Wait blocks until every worker has returned
func (w *NotificationWorker) Wait() {
	w.wg.Wait()
}

func (w *NotificationWorker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()
	logx.Debugf("Worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			logx.Debugf("Worker %d stopping", workerID)
			return
		default:
		}

		job, err := w.queue.Dequeue(ctx, dequeueTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logx.Errorf("Worker %d dequeue error: %v", workerID, err)
			sleep(ctx, time.Second)
			continue
		}

		// queue timeout, no jobs available
		if job == nil {
			continue
		}

		logx.Debugf("Worker %d dispatching application %s", workerID, job.ApplicationID)
		if _, err := w.dispatcher.Dispatch(ctx, job.ApplicationID); err != nil {
			logx.Errorf("Worker %d dispatch for application %s failed: %v", workerID, job.ApplicationID, err)
		}
	}
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
