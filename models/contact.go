// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Contact is a single address-book entry owned by exactly one user.
type Contact struct {
	// ID is the unique identifier of the record in the database.
	ID int64 `json:"id" db:"id"`

	// UserID is the owner of this contact. It is taken from the
	// authenticated request and never from the request body.
	UserID int64 `json:"-" db:"user_id"`

	FirstName string `json:"first_name" db:"first_name" validate:"required,max=128"`
	LastName  string `json:"last_name" db:"last_name" validate:"required,max=128"`
	Email     string `json:"email" db:"email" validate:"required,max=128"`
	Phone     string `json:"phone" db:"phone" validate:"required,max=128"`

	// Birthday is optional; only its month and day take part in the
	// upcoming-birthdays query.
	Birthday *Date `json:"birthday" db:"birthday"`

	// AdditionalInfo is a free-text note.
	AdditionalInfo *string `json:"additional_info" db:"additional_info" validate:"omitempty,max=256"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the last modification, nil if never updated.
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// ContactUpdate carries a partial update of a contact.
// Only non-nil fields will be updated.
type ContactUpdate struct {
	// ID is the identifier of the record to update. Required.
	ID int64 `json:"-"`

	// UserID is the owner of the record. Required for data isolation.
	UserID int64 `json:"-"`

	FirstName      *string `json:"first_name,omitempty" validate:"omitempty,max=128"`
	LastName       *string `json:"last_name,omitempty" validate:"omitempty,max=128"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email,max=128"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,max=128"`
	Birthday       *Date   `json:"birthday,omitempty"`
	AdditionalInfo *string `json:"additional_info,omitempty" validate:"omitempty,max=256"`
}

// IsEmpty reports whether no field is set for update.
func (u ContactUpdate) IsEmpty() bool {
	return u.FirstName == nil &&
		u.LastName == nil &&
		u.Email == nil &&
		u.Phone == nil &&
		u.Birthday == nil &&
		u.AdditionalInfo == nil
}

// ContactFilter holds list criteria. Empty string filters are ignored.
type ContactFilter struct {
	// UserID scopes the listing to its owner. Required.
	UserID int64

	FirstName string
	LastName  string
	Email     string

	Skip uint64
	// Limit is nil when the client did not pass one. An explicit zero asks
	// for an empty page.
	Limit *uint64
}

const (
	// DefaultContactsLimit is applied when the client does not pass a limit.
	DefaultContactsLimit uint64 = 100
)
