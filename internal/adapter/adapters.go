// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
)

// Adapters aggregates the outbound integrations selected by configuration.
type Adapters struct {
	AvatarStorage AvatarStorage
	MailSender    MailSender
}

// NewAdapters builds the avatar storage and mail sender named by cfg.
// Returns [ErrUnknownProvider] for a provider name it does not know.
func NewAdapters(ctx context.Context, cfg config.Adapter, log *logger.Logger) (*Adapters, error) {
	avatars, err := newAvatarStorage(ctx, cfg.Avatar, log)
	if err != nil {
		return nil, err
	}

	mailer, err := newMailSender(cfg.Mail, log)
	if err != nil {
		return nil, err
	}

	return &Adapters{AvatarStorage: avatars, MailSender: mailer}, nil
}

func newAvatarStorage(ctx context.Context, cfg config.Avatar, log *logger.Logger) (AvatarStorage, error) {
	switch cfg.Provider {
	case config.AvatarProviderCloudinary:
		return NewCloudinaryAvatarStorage(cfg.Cloudinary, cfg.RequestTimeout, log), nil
	case config.AvatarProviderS3:
		return NewS3AvatarStorage(ctx, cfg.S3, log)
	default:
		return nil, fmt.Errorf("%w: avatar provider %q", ErrUnknownProvider, cfg.Provider)
	}
}

func newMailSender(cfg config.Mail, log *logger.Logger) (MailSender, error) {
	switch cfg.Provider {
	case config.MailProviderSMTP:
		return NewSMTPMailSender(cfg, log), nil
	case config.MailProviderSendGrid:
		return NewSendGridMailSender(cfg, log), nil
	case config.MailProviderLog:
		return NewLogMailSender(log), nil
	default:
		return nil, fmt.Errorf("%w: mail provider %q", ErrUnknownProvider, cfg.Provider)
	}
}
