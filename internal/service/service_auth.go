// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/metrics"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/MKhiriev/go-contacts-keeper/internal/utils"
	"github.com/MKhiriev/go-contacts-keeper/internal/validators"
	"github.com/MKhiriev/go-contacts-keeper/internal/workers"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

// Auth event names reported to [metrics.Metrics.AuthEvent].
const (
	eventRegister      = "register"
	eventLogin         = "login"
	eventConfirmEmail  = "confirm_email"
	eventResetPassword = "reset_password"
)

// authService is the concrete implementation of AuthService.
// It hashes passwords with bcrypt, issues purpose-tagged JWT tokens and
// hands confirmation and reset mails to the mail queue.
type authService struct {
	userRepository store.UserRepository
	mailQueue      workers.MailQueue
	validator      validators.Validator
	newJobID       func() string
	metrics        *metrics.Metrics

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	accessTTL  time.Duration
	confirmTTL time.Duration
	resetTTL   time.Duration

	hashCost int

	// baseURL, when set, replaces the request-derived base URL in mails.
	baseURL string

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg. m may be nil.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	mailQueue workers.MailQueue,
	validator validators.Validator,
	m *metrics.Metrics,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		mailQueue:      mailQueue,
		validator:      validator,
		newJobID:       utils.NewJobID,
		metrics:        m,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		accessTTL:      cfg.AccessTokenDuration,
		confirmTTL:     cfg.EmailTokenDuration,
		resetTTL:       cfg.ResetTokenDuration,
		hashCost:       cfg.PasswordHashCost,
		baseURL:        cfg.BaseURL,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates an unconfirmed account and queues the confirmation mail.
//
// The email is checked for duplicates before the username; both checks are
// repeated by the unique constraints of the store, so a concurrent duplicate
// still fails with [store.ErrEmailAlreadyExists] or
// [store.ErrUsernameAlreadyExists].
func (a *authService) Register(ctx context.Context, req models.RegisterRequest, baseURL string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	if err := a.ensureAbsent(ctx, a.userRepository.FindUserByEmail, req.Email, store.ErrEmailAlreadyExists); err != nil {
		a.event(eventRegister, false)
		return models.User{}, err
	}
	if err := a.ensureAbsent(ctx, a.userRepository.FindUserByUsername, req.Username, store.ErrUsernameAlreadyExists); err != nil {
		a.event(eventRegister, false)
		return models.User{}, err
	}

	hashed, err := utils.HashPassword(req.Password, a.hashCost)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("user registration failed: %w", err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashed,
		Avatar:         utils.GravatarURL(req.Email),
		Role:           models.RoleUser,
	})
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Str("username", req.Username).Msg("user creation ended with error")
		a.event(eventRegister, false)
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.event(eventRegister, true)
	a.sendConfirmation(ctx, created, baseURL)

	return created, nil
}

// ensureAbsent fails with conflict when find locates an account by value.
func (a *authService) ensureAbsent(
	ctx context.Context,
	find func(context.Context, string) (models.User, error),
	value string,
	conflict error,
) error {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return conflict
	case errors.Is(err, store.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("user lookup failed: %w", err)
	}
}

// Login verifies the credentials and issues an access token.
//
// An unknown username and a wrong password both yield [ErrWrongPassword].
// Valid credentials of an unconfirmed account yield [ErrEmailNotConfirmed].
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Token{}, err
	}

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		a.event(eventLogin, false)
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("func", "authService.Login").Str("username", req.Username).Msg("unknown username")
			return models.Token{}, ErrWrongPassword
		}
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifyPassword(req.Password, user.HashedPassword) {
		log.Warn().Str("func", "authService.Login").Int64("id", user.UserID).Msg("wrong password")
		a.event(eventLogin, false)
		return models.Token{}, ErrWrongPassword
	}

	if !user.Confirmed {
		a.event(eventLogin, false)
		return models.Token{}, ErrEmailNotConfirmed
	}

	token, err := a.issue(user.Username, models.PurposeAccess, a.accessTTL)
	if err != nil {
		return models.Token{}, err
	}

	a.event(eventLogin, true)
	return token, nil
}

func (a *authService) ConfirmEmail(ctx context.Context, token string) (bool, error) {
	log := logger.FromContext(ctx)

	email, err := a.decode(token, models.PurposeConfirmEmail)
	if err != nil {
		log.Warn().Err(err).Str("func", "authService.ConfirmEmail").Msg("invalid confirmation token")
		a.event(eventConfirmEmail, false)
		return false, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		a.event(eventConfirmEmail, false)
		if errors.Is(err, store.ErrUserNotFound) {
			return false, ErrVerificationFailed
		}
		return false, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.Confirmed {
		return true, nil
	}

	if err = a.userRepository.ConfirmEmail(ctx, email); err != nil {
		log.Err(err).Str("func", "authService.ConfirmEmail").Int64("id", user.UserID).Msg("confirming email failed")
		a.event(eventConfirmEmail, false)
		return false, fmt.Errorf("confirming email failed: %w", err)
	}

	a.event(eventConfirmEmail, true)
	return false, nil
}

// RequestConfirmation queues a new confirmation mail for an unconfirmed
// account. An unknown email yields a wrapped [store.ErrUserNotFound].
func (a *authService) RequestConfirmation(ctx context.Context, req models.EmailRequest, baseURL string) (bool, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return false, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return false, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.Confirmed {
		return true, nil
	}

	a.sendConfirmation(ctx, user, baseURL)
	return false, nil
}

func (a *authService) RequestPasswordReset(ctx context.Context, req models.EmailRequest, baseURL string) error {
	if err := a.validator.Validate(ctx, req); err != nil {
		return err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("user search by email failed: %w", err)
	}

	token, err := a.issue(user.Email, models.PurposeResetPassword, a.resetTTL)
	if err != nil {
		return err
	}

	a.enqueue(ctx, models.MailResetPassword, user, baseURL, token)
	return nil
}

func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordConfirmRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return err
	}

	email, err := a.decode(req.Token, models.PurposeResetPassword)
	if err != nil {
		log.Warn().Err(err).Str("func", "authService.ResetPassword").Msg("invalid reset token")
		a.event(eventResetPassword, false)
		return err
	}

	if _, err = a.userRepository.FindUserByEmail(ctx, email); err != nil {
		a.event(eventResetPassword, false)
		return fmt.Errorf("user search by email failed: %w", err)
	}

	hashed, err := utils.HashPassword(req.NewPassword, a.hashCost)
	if err != nil {
		return fmt.Errorf("password reset failed: %w", err)
	}

	if err = a.userRepository.UpdatePassword(ctx, email, hashed); err != nil {
		log.Err(err).Str("func", "authService.ResetPassword").Msg("updating password failed")
		a.event(eventResetPassword, false)
		return fmt.Errorf("updating password failed: %w", err)
	}

	a.event(eventResetPassword, true)
	return nil
}

// Authenticate returns [ErrInvalidToken] for a bad token and for a token
// whose user no longer exists.
func (a *authService) Authenticate(ctx context.Context, accessToken string) (models.User, error) {
	username, err := a.decode(accessToken, models.PurposeAccess)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%w: user %q no longer exists", ErrInvalidToken, username)
		}
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return user, nil
}

func (a *authService) issue(subject string, purpose models.TokenPurpose, ttl time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, subject, purpose, ttl, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// decode normalises every validation failure to ErrInvalidToken.
func (a *authService) decode(raw string, purpose models.TokenPurpose) (string, error) {
	token, err := utils.ValidateAndParseJWTToken(raw, a.tokenSignKey, a.tokenIssuer, purpose)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return token.Subject, nil
}

func (a *authService) sendConfirmation(ctx context.Context, user models.User, baseURL string) {
	token, err := a.issue(user.Email, models.PurposeConfirmEmail, a.confirmTTL)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.sendConfirmation").Msg("confirmation token was not issued")
		return
	}
	a.enqueue(ctx, models.MailConfirmEmail, user, baseURL, token)
}

// enqueue hands a mail job to the queue. Failures are logged and never
// reach the caller.
func (a *authService) enqueue(ctx context.Context, kind models.MailKind, user models.User, baseURL string, token models.Token) {
	job := models.MailJob{
		ID:        a.newJobID(),
		Kind:      kind,
		To:        user.Email,
		Username:  user.Username,
		BaseURL:   a.resolveBaseURL(baseURL),
		Token:     token.SignedString,
		CreatedAt: a.now(),
	}

	if err := a.mailQueue.Enqueue(context.WithoutCancel(ctx), job); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "authService.enqueue").
			Str("job_id", job.ID).
			Str("kind", string(kind)).
			Msg("mail job was not queued")
	}
}

func (a *authService) resolveBaseURL(requestBaseURL string) string {
	base := requestBaseURL
	if a.baseURL != "" {
		base = a.baseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

func (a *authService) event(name string, ok bool) {
	if a.metrics != nil {
		a.metrics.AuthEvent(name, ok)
	}
}
