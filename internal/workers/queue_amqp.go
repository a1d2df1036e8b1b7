// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

const amqpConsumerTag = "contacts-mail-worker"

// amqpMailQueue keeps mail jobs in a durable RabbitMQ queue, so jobs
// survive a restart of the server.
type amqpMailQueue struct {
	conn *amqp.Connection

	// publishCh is shared by all producers; amqp channels are not safe
	// for concurrent publishing.
	publishMu sync.Mutex
	publishCh *amqp.Channel

	exchange string
	queue    string

	logger *logger.Logger
}

// NewAMQPMailQueue dials RabbitMQ and declares the mail topology: a durable
// direct exchange (when configured) bound to a durable queue, routed by the
// queue name.
func NewAMQPMailQueue(cfg config.AMQP, log *logger.Logger) (MailQueue, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	if err = declareMailTopology(ch, cfg.Exchange, cfg.Queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	log.Info().
		Str("func", "NewAMQPMailQueue").
		Str("exchange", cfg.Exchange).
		Str("queue", cfg.Queue).
		Msg("mail queue declared")

	return &amqpMailQueue{
		conn:      conn,
		publishCh: ch,
		exchange:  cfg.Exchange,
		queue:     cfg.Queue,
		logger:    log,
	}, nil
}

func declareMailTopology(ch *amqp.Channel, exchange, queue string) error {
	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare queue '%s': %w", queue, err)
	}

	if exchange == "" {
		return nil
	}

	if err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeDirect,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare exchange '%s': %w", exchange, err)
	}

	if err := ch.QueueBind(queue, queue, exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue '%s' to exchange '%s': %w", queue, exchange, err)
	}

	return nil
}

// Enqueue implements [MailQueue] by publishing a persistent JSON message.
func (q *amqpMailQueue) Enqueue(ctx context.Context, job models.MailJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal mail job: %w", err)
	}

	q.publishMu.Lock()
	defer q.publishMu.Unlock()

	if q.publishCh.IsClosed() {
		return ErrQueueClosed
	}

	err = q.publishCh.PublishWithContext(ctx,
		q.exchange,
		q.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    job.ID,
			Timestamp:    job.CreatedAt,
			Type:         string(job.Kind),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish mail job %s: %w", job.ID, err)
	}

	return nil
}

// Consume implements [MailQueue]. Malformed messages are rejected without
// requeue; every other delivery is acknowledged after handle returns.
func (q *amqpMailQueue) Consume(ctx context.Context, handle JobHandler) error {
	ch, err := q.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open a channel: %w", err)
	}
	defer ch.Close()

	if err = ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	deliveries, err := ch.Consume(
		q.queue,
		amqpConsumerTag,
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log := q.logger.GetChildLogger()
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}

			var job models.MailJob
			if err = json.Unmarshal(d.Body, &job); err != nil {
				log.Err(err).
					Str("func", "amqpMailQueue.Consume").
					Uint64("delivery_tag", d.DeliveryTag).
					Msg("malformed mail job rejected")
				_ = d.Nack(false, false)
				continue
			}

			_ = handle(ctx, job)

			if err = d.Ack(false); err != nil {
				log.Err(err).Str("func", "amqpMailQueue.Consume").Str("job_id", job.ID).Msg("failed to ack mail job")
			}
		}
	}
}

func (q *amqpMailQueue) Close() error {
	q.publishMu.Lock()
	defer q.publishMu.Unlock()

	if err := q.publishCh.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return fmt.Errorf("failed to close channel: %w", err)
	}
	if err := q.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}
