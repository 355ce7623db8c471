package id

import (
	"crypto/rand"
	"encoding/hex"
)

const idLen = 32

// NewID32 returns 32 lowercase hex characters from 16 random bytes.
// Used for X-Request-Id and as a ready-made Idempotency-Key.
func NewID32() string {
	b := make([]byte, idLen/2)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// IsID32 reports whether s has the shape NewID32 produces.
func IsID32(s string) bool {
	if len(s) != idLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
