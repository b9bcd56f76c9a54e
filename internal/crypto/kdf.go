package crypto

import (
	"unicode/utf8"
)

const (
	// KeySize is the symmetric key width for both modes.
	KeySize = 32
	// SaltSize matches libsodium's crypto_pwhash_SALTBYTES.
	SaltSize = 16
	// MinPasswordLength is counted in characters, not bytes.
	MinPasswordLength = 6
)

// ValidatePassword fails fast on passwords that must never reach the KDF.
func ValidatePassword(password string) error {
	if password == "" {
		return validationErrorf("password is required")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return validationErrorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

// GenerateSalt returns a fresh random salt. Salts are never reused across envelopes.
func GenerateSalt() ([]byte, error) {
	return Default().RandomBytes(SaltSize)
}

// DeriveKey turns a password into a 32-byte key with Argon2id.
// Identical (password, salt) pairs always produce the identical key.
func DeriveKey(password string, salt []byte) ([]byte, error) {
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	if len(salt) != SaltSize {
		return nil, validationErrorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}

	pw := []byte(password)
	defer clear(pw)

	return Default().argon2id(pw, salt), nil
}
