package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contacts-keeper/internal/adapter"
	"github.com/MKhiriev/go-contacts-keeper/internal/service"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/MKhiriev/go-contacts-keeper/internal/validators"
)

// errorStatuses is matched in order, so more specific sentinels come first.
var errorStatuses = []struct {
	target error
	status int
}{
	{validators.ErrInvalidInput, http.StatusBadRequest},

	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrEmailNotConfirmed, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusUnauthorized},
	{service.ErrVerificationFailed, http.StatusBadRequest},
	{service.ErrNotEnoughRights, http.StatusForbidden},
	{service.ErrEmptyAvatar, http.StatusBadRequest},

	{store.ErrUsernameAlreadyExists, http.StatusConflict},
	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrContactNotFound, http.StatusNotFound},

	{adapter.ErrAvatarUpload, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the mapped status. Client errors carry the error
// text, server errors only the status text.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
