package lib

import (
	"github.com/google/uuid"
)

// NewProcessID generates the identifier a runner hands out for a child,
// a UUID version 4 string (RFC 4122).
func NewProcessID() string {
	return uuid.NewString()
}
