package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns a random 32-char lowercase hex string. Used for lock
// fencing tokens and request ids.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
