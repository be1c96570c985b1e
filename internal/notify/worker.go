package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"reclamations/backend/internal/models"
)

// pollTimeout bounds each blocking pop so the worker notices context
// cancellation between messages.
const pollTimeout = 5 * time.Second

// Queue is the part of the store the worker consumes from.
type Queue interface {
	NextNotification(ctx context.Context, timeout time.Duration) (*models.Notification, error)
}

// Worker drains the notification queue and fans each message out to
// every configured sender. It runs on its own goroutine, detached from
// any request.
type Worker struct {
	Queue   Queue
	Senders []Sender
	Log     *zap.Logger
}

// NewWorker creates a worker over the given queue and senders.
func NewWorker(q Queue, senders []Sender, log *zap.Logger) *Worker {
	return &Worker{Queue: q, Senders: senders, Log: log}
}

// Run consumes until the context is cancelled. A failing sender does
// not stop delivery to the others, and no failure is ever retried or
// surfaced.
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, err := w.Queue.NextNotification(ctx, pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.Log.Warn("failed to read notification queue", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		if n == nil {
			continue
		}

		for _, sender := range w.Senders {
			if err := sender.Send(*n); err != nil {
				w.Log.Warn("failed to deliver notification",
					zap.String("notification_id", n.ID),
					zap.String("to", n.To),
					zap.Error(err))
			}
		}
	}
}
