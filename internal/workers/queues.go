package workers

import (
	"fmt"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
)

// NewMailQueue builds the queue named by cfg.MailQueue.
func NewMailQueue(cfg config.Workers, log *logger.Logger) (MailQueue, error) {
	switch cfg.MailQueue {
	case config.MailQueueMemory:
		return NewMemoryMailQueue(cfg.MailQueueSize), nil
	case config.MailQueueAMQP:
		return NewAMQPMailQueue(cfg.AMQP, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownQueue, cfg.MailQueue)
	}
}
