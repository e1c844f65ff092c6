package helpers

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// NewSalt returns a random per-user salt. bcrypt already salts internally;
// the extra column is kept because the persisted user layout carries one.
func NewSalt() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// HashPassword hashes salt+plain using bcrypt.
func HashPassword(salt, plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(salt+plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword compares a stored bcrypt hash against salt+plain.
func CheckPassword(hash, salt, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(salt+plain)) == nil
}
