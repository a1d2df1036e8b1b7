package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-contacts-keeper/models"
)

// memoryMailQueue is a bounded in-process queue. Jobs are lost on restart.
type memoryMailQueue struct {
	jobs chan models.MailJob

	mu     sync.RWMutex
	closed bool
}

// NewMemoryMailQueue returns a [MailQueue] buffering up to size jobs.
func NewMemoryMailQueue(size int) MailQueue {
	if size <= 0 {
		size = 1
	}
	return &memoryMailQueue{jobs: make(chan models.MailJob, size)}
}

// Enqueue implements [MailQueue]. It never blocks: a full buffer yields
// [ErrQueueFull].
func (q *memoryMailQueue) Enqueue(ctx context.Context, job models.MailJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("enqueue mail job: %w", err)
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Consume implements [MailQueue]. After Close it drains the jobs still
// buffered and returns nil.
func (q *memoryMailQueue) Consume(ctx context.Context, handle JobHandler) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case job, ok := <-q.jobs:
			if !ok {
				return nil
			}
			_ = handle(ctx, job)
		}
	}
}

func (q *memoryMailQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	q.closed = true
	close(q.jobs)
	return nil
}
