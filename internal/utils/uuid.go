package utils

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier for users and projects.
// UUIDv7 is preferred for its time-ordered layout; on the rare generation
// failure a random UUIDv4 is used instead.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
