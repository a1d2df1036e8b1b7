// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models against their `validate` struct
// tags before they reach the stores.
//
// Failures wrap [ErrInvalidInput], so every layer above can answer them
// with 400 Bad Request through a single errors.Is check.
package validators

import "context"

// Validator validates a value. When fields are given only those struct
// fields are checked, which is how partial contact updates are validated.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
