// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Authorization header errors.
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
	ErrEmptyToken                 = errors.New("empty token in `Authorization` header")
)

var (
	errInvalidContactID = errors.New("invalid contact id")
	errInvalidPaging    = errors.New("skip and limit must be non-negative integers")
	errNoUserInContext  = errors.New("no authenticated user in request context")
)
