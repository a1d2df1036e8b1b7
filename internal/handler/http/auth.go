package http

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/service"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/MKhiriev/go-contacts-keeper/internal/utils"
	"github.com/MKhiriev/go-contacts-keeper/internal/validators"
	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/go-chi/chi/v5"
)

const tokenTypeBearer = "bearer"

// User-facing outcomes of the auth flows.
const (
	msgEmailConfirmed        = "Email confirmed"
	msgEmailAlreadyConfirmed = "Your email is already confirmed"
	msgCheckEmail            = "Check your email for confirmation"
	msgResetEmailSent        = "Password reset email sent"
	msgPasswordUpdated       = "Password updated successfully"
	msgVerificationError     = "Verification error"
	msgInvalidToken          = "Invalid or expired token"
	msgUserNotFound          = "User not found"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req, utils.RequestBaseURL(r))
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrInvalidInput):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			http.Error(w, "Account with this email already exists", http.StatusConflict)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			http.Error(w, "Account with this username already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Info().Int64("id", user.UserID).Msg("user registered")
	utils.WriteJSON(w, user, http.StatusCreated)
}

// login reads form-encoded username and password fields.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "Invalid form was passed", http.StatusBadRequest)
		return
	}

	req := models.LoginRequest{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrInvalidInput):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			unauthorized(w, "Incorrect username or password")
			return
		case errors.Is(err, service.ErrEmailNotConfirmed):
			log.Err(err).Str("username", req.Username).Msg("login before email confirmation")
			unauthorized(w, "Email not confirmed")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.TokenResponse{AccessToken: token.SignedString, TokenType: tokenTypeBearer}, http.StatusOK)
}

func (h *Handler) confirmEmail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	alreadyConfirmed, err := h.services.AuthService.ConfirmEmail(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			log.Err(err).Msg("invalid confirmation token")
			http.Error(w, msgInvalidToken, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrVerificationFailed):
			log.Err(err).Msg("confirmation token for unknown email")
			http.Error(w, msgVerificationError, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during email confirmation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if alreadyConfirmed {
		utils.WriteMessage(w, msgEmailAlreadyConfirmed, http.StatusOK)
		return
	}
	utils.WriteMessage(w, msgEmailConfirmed, http.StatusOK)
}

func (h *Handler) requestEmail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	alreadyConfirmed, err := h.services.AuthService.RequestConfirmation(r.Context(), req, utils.RequestBaseURL(r))
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Msg("confirmation requested for unknown email")
			http.Error(w, msgUserNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during confirmation request")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if alreadyConfirmed {
		utils.WriteMessage(w, msgEmailAlreadyConfirmed, http.StatusOK)
		return
	}
	utils.WriteMessage(w, msgCheckEmail, http.StatusOK)
}

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.RequestPasswordReset(r.Context(), req, utils.RequestBaseURL(r)); err != nil {
		switch {
		case errors.Is(err, validators.ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Msg("password reset requested for unknown email")
			http.Error(w, msgUserNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password reset request")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteMessage(w, msgResetEmailSent, http.StatusOK)
}

// resetPasswordConfirm accepts a JSON body or the token and new_password
// query parameters. Body fields win over query parameters.
func (h *Handler) resetPasswordConfirm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := r.URL.Query()
	req := models.ResetPasswordConfirmRequest{
		Token:       query.Get("token"),
		NewPassword: query.Get("new_password"),
	}

	if isJSONRequest(r) {
		var body models.ResetPasswordConfirmRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
		if body.Token != "" {
			req.Token = body.Token
		}
		if body.NewPassword != "" {
			req.NewPassword = body.NewPassword
		}
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, validators.ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidToken):
			log.Err(err).Msg("invalid reset token")
			http.Error(w, msgInvalidToken, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Msg("reset token for unknown email")
			http.Error(w, msgUserNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password reset")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteMessage(w, msgPasswordUpdated, http.StatusOK)
}

// isJSONRequest reports whether r declares a JSON body.
func isJSONRequest(r *http.Request) bool {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}
