package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
)

// withLogging writes one access entry per request once the response is done.
// Server errors are logged at error level, everything else at info.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		log := logger.FromRequest(r)
		status := rw.statusCode()
		entry := log.Info()
		if status >= http.StatusInternalServerError {
			entry = log.Error()
		}

		entry.
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("route", routePattern(r)).
			Str("remote_addr", r.RemoteAddr).
			Str("user_agent", r.UserAgent()).
			Int("status", status).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}
