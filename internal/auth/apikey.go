package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt truncates inputs at 72 bytes; keys longer than that would
// silently compare equal on their prefix.
const bcryptMaxKeyBytes = 72

// HashAPIKey hashes a plaintext API key for storage in configuration.
// Used by deploy tooling; the server itself only ever compares.
func HashAPIKey(plain string) (string, error) {
	if plain == "" {
		return "", fmt.Errorf("api key required")
	}
	if len(plain) > bcryptMaxKeyBytes {
		return "", fmt.Errorf("api key too long: bcrypt only supports up to %d bytes", bcryptMaxKeyBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CompareAPIKeyHash(hash string, plain string) error {
	if plain == "" {
		return fmt.Errorf("api key required")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
