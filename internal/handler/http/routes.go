package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RealIP,
		middleware.Recoverer,
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		withGZip,
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Get("/auth/confirmed_email/{token}", h.confirmEmail)
		r.Post("/auth/request_email", h.requestEmail)
		r.Post("/auth/request_password_reset", h.requestPasswordReset)
		r.Post("/auth/reset-password-confirm", h.resetPasswordConfirm)

		r.Get("/api/version/", h.getServerVersion)
		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/contacts/", h.listContacts)
		r.Post("/contacts/", h.createContact)
		r.Get("/contacts/birthdays", h.upcomingBirthdays)
		r.Get("/contacts/{id}", h.getContact)
		r.Put("/contacts/{id}", h.updateContact)
		r.Delete("/contacts/{id}", h.deleteContact)
		r.Patch("/contacts/{id}/phone", h.updatePhone)
		r.Patch("/contacts/{id}/email", h.updateEmail)

		r.With(h.withRateLimit).Get("/users/me", h.me)
		r.Patch("/users/avatar", h.updateAvatar)

		r.With(h.requireAdmin).Get("/admin_panel/admin", h.admin)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
