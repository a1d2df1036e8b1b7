// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client limiter survives without requests.
const limiterIdleTTL = 3 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientRateLimiter keeps one token bucket per client address. Each bucket
// refills requests tokens per period and holds at most requests tokens.
type clientRateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	lastPrune time.Time
	now       func() time.Time
}

// newClientRateLimiter returns nil when requests is not positive, which
// disables limiting.
func newClientRateLimiter(requests int, period time.Duration) *clientRateLimiter {
	if requests <= 0 || period <= 0 {
		return nil
	}
	return &clientRateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Every(period / time.Duration(requests)),
		burst:   requests,
		now:     time.Now,
	}
}

func (l *clientRateLimiter) allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastPrune) > limiterIdleTTL {
		for key, c := range l.clients {
			if now.Sub(c.lastSeen) > limiterIdleTTL {
				delete(l.clients, key)
			}
		}
		l.lastPrune = now
	}

	c, ok := l.clients[client]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[client] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// withRateLimit answers 429 Too Many Requests once the client exhausts its
// bucket.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.meLimiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientAddress(r)
		if !h.meLimiter.allow(client) {
			logger.FromRequest(r).Warn().Str("client", client).Msg("rate limit exceeded")
			if h.metrics != nil {
				h.metrics.RateLimited.Inc()
			}
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientAddress strips the port from RemoteAddr, which middleware.RealIP
// may already have replaced with a forwarded address.
func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
