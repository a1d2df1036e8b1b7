package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-contacts-keeper/internal/adapter"
	"github.com/MKhiriev/go-contacts-keeper/internal/service"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/MKhiriev/go-contacts-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: first_name is required", validators.ErrInvalidInput), http.StatusBadRequest},
		{service.ErrWrongPassword, http.StatusUnauthorized},
		{fmt.Errorf("login: %w", service.ErrEmailNotConfirmed), http.StatusUnauthorized},
		{service.ErrNotEnoughRights, http.StatusForbidden},
		{store.ErrEmailAlreadyExists, http.StatusConflict},
		{fmt.Errorf("get contact: %w", store.ErrContactNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: bad gateway", adapter.ErrAvatarUpload), http.StatusBadGateway},
		{store.ErrExecutingQuery, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesServerErrorDetail(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, fmt.Errorf("select contacts: %w", store.ErrExecutingQuery))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error\n", w.Body.String())
}

func TestWriteError_ShowsClientErrorDetail(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, store.ErrUsernameAlreadyExists)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, store.ErrUsernameAlreadyExists.Error()+"\n", w.Body.String())
}
