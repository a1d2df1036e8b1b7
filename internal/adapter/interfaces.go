// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of the server: the
// avatar object storage and the mail transport.
//
// Each concern is behind a small interface ([AvatarStorage], [MailSender])
// with one implementation per provider. [NewAdapters] selects the
// implementations from configuration.
//
// Errors returned by HTTP-based providers are mapped from status codes by
// mapHTTPError so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
// Every provider failure is additionally wrapped in [ErrAvatarUpload] or
// [ErrMailSend].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-contacts-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AvatarStorage stores profile pictures in an external object storage.
type AvatarStorage interface {
	// Upload stores content under a key derived from ownerKey and returns the
	// public URL of the stored image. Uploading again for the same owner
	// replaces the previous image.
	Upload(ctx context.Context, ownerKey, filename string, content []byte) (string, error)
}

// MailSender delivers a rendered email.
type MailSender interface {
	Send(ctx context.Context, msg models.MailMessage) error
}
