// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// All violated groups are reported together, each wrapped around the
// matching sentinel so callers can test them with [errors.Is].
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.validateApp(),
		cfg.validateStorage(),
		cfg.validateServer(),
		cfg.validateAdapter(),
		cfg.validateWorkers(),
	)
}

func (cfg *StructuredConfig) validateApp() error {
	app := cfg.App
	switch {
	case app.TokenSignKey == "":
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	case app.TokenIssuer == "":
		return fmt.Errorf("%w: empty token issuer", ErrInvalidAppConfigs)
	case app.AccessTokenDuration <= 0 || app.EmailTokenDuration <= 0 || app.ResetTokenDuration <= 0:
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	}
	return nil
}

func (cfg *StructuredConfig) validateStorage() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}
	return nil
}

func (cfg *StructuredConfig) validateServer() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: neither HTTP nor gRPC address is set", ErrInvalidServerConfigs)
	}
	if cfg.Server.MeRateLimit < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidServerConfigs)
	}
	return nil
}

func (cfg *StructuredConfig) validateAdapter() error {
	avatar := cfg.Adapter.Avatar
	switch avatar.Provider {
	case AvatarProviderCloudinary:
		c := avatar.Cloudinary
		if c.CloudName == "" || c.APIKey == "" || c.APISecret == "" {
			return fmt.Errorf("%w: incomplete cloudinary credentials", ErrInvalidAdapterConfigs)
		}
	case AvatarProviderS3:
		if avatar.S3.Bucket == "" || avatar.S3.Region == "" {
			return fmt.Errorf("%w: s3 bucket and region are required", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown avatar provider %q", ErrInvalidAdapterConfigs, avatar.Provider)
	}

	mail := cfg.Adapter.Mail
	switch mail.Provider {
	case MailProviderLog:
	case MailProviderSMTP:
		if mail.SMTP.Host == "" || mail.SMTP.Port <= 0 || mail.FromAddress == "" {
			return fmt.Errorf("%w: smtp host, port and from address are required", ErrInvalidAdapterConfigs)
		}
	case MailProviderSendGrid:
		if mail.SendGrid.APIKey == "" || mail.FromAddress == "" {
			return fmt.Errorf("%w: sendgrid api key and from address are required", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown mail provider %q", ErrInvalidAdapterConfigs, mail.Provider)
	}

	return nil
}

func (cfg *StructuredConfig) validateWorkers() error {
	w := cfg.Workers
	switch w.MailQueue {
	case MailQueueMemory:
		if w.MailQueueSize <= 0 {
			return fmt.Errorf("%w: mail queue size must be positive", ErrInvalidWorkerConfigs)
		}
	case MailQueueAMQP:
		if w.AMQP.URL == "" || w.AMQP.Queue == "" {
			return fmt.Errorf("%w: amqp url and queue are required", ErrInvalidWorkerConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown mail queue %q", ErrInvalidWorkerConfigs, w.MailQueue)
	}
	return nil
}
