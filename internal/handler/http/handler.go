package http

import (
	"time"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/metrics"
	"github.com/MKhiriev/go-contacts-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// metrics is optional; nil disables the /metrics route and the
	// request counters.
	metrics *metrics.Metrics

	// meLimiter throttles GET /users/me per client address.
	meLimiter *clientRateLimiter

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		meLimiter:      newClientRateLimiter(cfg.MeRateLimit, time.Minute),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
