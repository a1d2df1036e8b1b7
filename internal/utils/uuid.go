package utils

import "github.com/google/uuid"

// NewJobID returns a time-ordered UUIDv7 string. A random v4 is used when the
// v7 generator cannot read the clock or entropy source.
func NewJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
