// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MailKind selects the template a mail job is rendered with.
type MailKind string

const (
	MailConfirmEmail  MailKind = "confirm_email"
	MailResetPassword MailKind = "reset_password"
)

// MailJob is a queued request to send a transactional email.
// It travels through the mail queue as JSON.
type MailJob struct {
	ID        string    `json:"id"`
	Kind      MailKind  `json:"kind"`
	To        string    `json:"to"`
	Username  string    `json:"username"`
	BaseURL   string    `json:"base_url"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// MailMessage is a rendered email ready for a transport.
type MailMessage struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}
