// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contacts-keeper/internal/adapter"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/metrics"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

// defaultSendTimeout bounds a single delivery attempt.
const defaultSendTimeout = 30 * time.Second

// MailWorker consumes a [MailQueue] and delivers every job through a
// [adapter.MailSender]. Delivery failures are logged and counted, never
// retried.
type MailWorker struct {
	queue    MailQueue
	sender   adapter.MailSender
	renderer *MailRenderer
	metrics  *metrics.Metrics

	sendTimeout time.Duration
	logger      *logger.Logger
}

// NewMailWorker wires a worker. m may be nil.
func NewMailWorker(queue MailQueue, sender adapter.MailSender, renderer *MailRenderer, m *metrics.Metrics, log *logger.Logger) *MailWorker {
	return &MailWorker{
		queue:       queue,
		sender:      sender,
		renderer:    renderer,
		metrics:     m,
		sendTimeout: defaultSendTimeout,
		logger:      log,
	}
}

// Run implements [Worker].
func (w *MailWorker) Run(ctx context.Context) {
	w.logger.Info().Str("func", "MailWorker.Run").Msg("mail worker started")

	if err := w.queue.Consume(ctx, w.Process); err != nil {
		w.logger.Err(err).Str("func", "MailWorker.Run").Msg("mail queue consumer stopped with error")
		return
	}

	w.logger.Info().Str("func", "MailWorker.Run").Msg("mail worker stopped")
}

// Process renders and sends a single job. The returned error is only
// informational; the job is considered handled either way.
func (w *MailWorker) Process(ctx context.Context, job models.MailJob) error {
	log := w.logger.With().
		Str("func", "MailWorker.Process").
		Str("job_id", job.ID).
		Str("kind", string(job.Kind)).
		Str("to", job.To).
		Logger()

	msg, err := w.renderer.Render(job)
	if err != nil {
		log.Err(err).Msg("failed to render mail job")
		w.count(job.Kind, false)
		return err
	}

	sendCtx, cancel := context.WithTimeout(ctx, w.sendTimeout)
	defer cancel()

	if err = w.sender.Send(sendCtx, msg); err != nil {
		log.Err(err).Msg("failed to send mail")
		w.count(job.Kind, false)
		return err
	}

	log.Debug().Dur("queued_for", time.Since(job.CreatedAt)).Msg("mail sent")
	w.count(job.Kind, true)
	return nil
}

func (w *MailWorker) count(kind models.MailKind, ok bool) {
	if w.metrics == nil {
		return
	}
	outcome := metrics.OutcomeSuccess
	if !ok {
		outcome = metrics.OutcomeFailure
	}
	w.metrics.MailJobs.WithLabelValues(string(kind), outcome).Inc()
}
