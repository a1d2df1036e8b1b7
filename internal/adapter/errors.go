package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrAvatarUpload wraps every failure of an avatar storage provider.
	ErrAvatarUpload = errors.New("avatar upload failed")

	// ErrMailSend wraps every failure of a mail transport.
	ErrMailSend = errors.New("mail send failed")

	ErrEmptyContent      = errors.New("empty content")
	ErrUnknownProvider   = errors.New("unknown provider")
	ErrMalformedResponse = errors.New("malformed provider response")
)
