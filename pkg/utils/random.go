package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID creates a simple unique ID (UUID replacement to keep
// connection tokens dependency-free).
func GenerateID() string {
	b := make([]byte, 8) // 16 hex characters
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}
