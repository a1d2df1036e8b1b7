package service

import "errors"

var (
	ErrWrongPassword     = errors.New("wrong username or password")
	ErrEmailNotConfirmed = errors.New("email is not confirmed")

	// ErrInvalidToken covers bad signatures, expiry, a wrong issuer and a
	// purpose mismatch alike.
	ErrInvalidToken = errors.New("token is invalid or expired")

	// ErrVerificationFailed is returned when a valid confirmation token
	// names an email no account is registered with.
	ErrVerificationFailed = errors.New("verification error")

	ErrNotEnoughRights = errors.New("not enough rights")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrEmptyAvatar         = errors.New("avatar file is empty")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
