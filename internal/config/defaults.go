// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaultConfig returns the values used for every field no other source set.
// Secrets and the database DSN have no defaults and must be provided.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:         "go-contacts-keeper",
			AccessTokenDuration: time.Hour,
			EmailTokenDuration:  24 * time.Hour,
			ResetTokenDuration:  time.Hour,
			PasswordHashCost:    10,
			Version:             "dev",
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: 10,
				MaxIdleConns: 4,
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			MeRateLimit:    10,
		},
		Adapter: Adapter{
			Avatar: Avatar{
				Provider:       AvatarProviderCloudinary,
				RequestTimeout: 30 * time.Second,
				Cloudinary: Cloudinary{
					Folder:     "RestApp",
					APIBaseURL: "https://api.cloudinary.com",
				},
				S3: S3{
					Region: "us-east-1",
				},
			},
			Mail: Mail{
				Provider: MailProviderLog,
				FromName: "Contacts App",
				SMTP: SMTP{
					Port: 465,
				},
				SendGrid: SendGrid{
					Host: "https://api.sendgrid.com",
				},
			},
		},
		Workers: Workers{
			MailQueue:     MailQueueMemory,
			MailQueueSize: 100,
			AMQP: AMQP{
				Exchange: "contacts.mail",
				Queue:    "contacts.mail.send",
			},
		},
	}
}
