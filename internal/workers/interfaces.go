// Package workers provides the background processing of the server.
//
// It defines the [Worker] interface, a [Workers] aggregate that runs
// multiple workers under one context, the [MailQueue] abstraction with an
// in-memory and a RabbitMQ implementation, and the [MailWorker] that renders
// and delivers queued mail jobs.
package workers

import (
	"context"

	"github.com/MKhiriev/go-contacts-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is canceled or the worker's source is exhausted.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// JobHandler processes a single mail job taken from a [MailQueue].
type JobHandler func(ctx context.Context, job models.MailJob) error

// MailQueue decouples mail producers from the worker that delivers them.
type MailQueue interface {
	// Enqueue adds job to the queue without waiting for delivery.
	Enqueue(ctx context.Context, job models.MailJob) error

	// Consume calls handle for every job until ctx is canceled or the queue
	// is closed. A job is acknowledged once handle returns, whatever the
	// result.
	Consume(ctx context.Context, handle JobHandler) error

	// Close stops accepting jobs and releases the queue resources.
	Close() error
}
