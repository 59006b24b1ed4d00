// Package msgkey derives short lookup keys for laid-out messages. A key
// depends only on the input text, so the same message always maps to the
// same key and, through Layout, to the same coordinates.
package msgkey

import (
	"crypto/sha256"
	"encoding/hex"
)

// DefaultLength is the number of hex characters Derive keeps.
const DefaultLength = 8

// Derive returns the first DefaultLength hex characters of the SHA-256 of input.
func Derive(input string) string {
	return DeriveN(input, DefaultLength)
}

// DeriveN keeps n hex characters, clamped to the full 64.
func DeriveN(input string, n int) string {
	sum := sha256.Sum256([]byte(input))
	key := hex.EncodeToString(sum[:])
	if n < 0 {
		n = 0
	}
	if n > len(key) {
		n = len(key)
	}
	return key[:n]
}
