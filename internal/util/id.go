package util

import "github.com/google/uuid"

// NewRequestID returns an ID suitable for the X-Request-Id header.
func NewRequestID() string {
	return uuid.NewString()
}
