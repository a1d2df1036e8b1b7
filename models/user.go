// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserRole is the authorization level of an account.
type UserRole string

const (
	// RoleUser is assigned to every account created through registration.
	RoleUser UserRole = "user"

	// RoleAdmin grants access to the administrative routes.
	RoleAdmin UserRole = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id" db:"id"`

	// Username is the unique login name. It is the subject of access tokens.
	Username string `json:"username" db:"username"`

	// Email is the unique address used for confirmation and password reset.
	Email string `json:"email" db:"email"`

	// HashedPassword is the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	HashedPassword string `json:"-" db:"hashed_password"`

	// Avatar is the public URL of the profile picture. Empty when unset.
	Avatar string `json:"avatar" db:"avatar"`

	// Confirmed becomes true once the email address has been verified.
	Confirmed bool `json:"-" db:"confirmed"`

	// Role is the authorization level of the account.
	Role UserRole `json:"role" db:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
