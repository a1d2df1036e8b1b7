// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=4,maxbytes=72"`
}

// LoginRequest holds the form-encoded credentials of POST /auth/login.
type LoginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// EmailRequest is the body of the resend-confirmation and
// password-reset request endpoints.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordConfirmRequest completes the password-reset flow.
type ResetPasswordConfirmRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=4,maxbytes=72"`
}

// ContactPhoneUpdate is the body of PATCH /contacts/{id}/phone.
type ContactPhoneUpdate struct {
	Phone string `json:"phone" validate:"required,max=128"`
}

// ContactEmailUpdate is the body of PATCH /contacts/{id}/email.
type ContactEmailUpdate struct {
	Email string `json:"email" validate:"required,email,max=128"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse carries a human-readable outcome of an operation.
type MessageResponse struct {
	Message string `json:"message"`
}
