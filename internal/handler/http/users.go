package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-contacts-keeper/internal/adapter"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/service"
	"github.com/MKhiriev/go-contacts-keeper/internal/utils"
)

const (
	avatarFormField = "file"

	// maxAvatarSize bounds the multipart body of an avatar upload.
	maxAvatarSize = 10 << 20
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		unauthorized(w, "Not authenticated")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateAvatar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := currentUser(r)
	if !ok {
		unauthorized(w, "Not authenticated")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarSize)
	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		log.Err(err).Str("func", "*Handler.updateAvatar").Msg("invalid multipart form")
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile(avatarFormField)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateAvatar").Msg("no avatar file in form")
		http.Error(w, "Field `file` is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateAvatar").Msg("reading avatar file failed")
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserService.UpdateAvatar(r.Context(), user, header.Filename, content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyAvatar):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, adapter.ErrAvatarUpload):
			log.Err(err).Int64("id", user.UserID).Msg("avatar provider failure")
			http.Error(w, "Avatar upload failed", http.StatusBadGateway)
			return
		default:
			log.Err(err).Int64("id", user.UserID).Msg("unexpected error occurred during avatar update")
			writeError(w, err)
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
