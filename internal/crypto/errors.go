package crypto

import (
	"errors"
	"fmt"
)

// ConfigurationError is returned when a required secret or setting is absent.
// The operation is never attempted with a missing key.
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is not configured", e.Setting)
	}
	return fmt.Sprintf("%s is misconfigured: %s", e.Setting, e.Reason)
}

// ValidationError is a caller-correctable input problem (short password,
// empty private key, wrong key width).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// AuthenticationFailure means the ciphertext did not authenticate under the
// given key, or the decrypted secret does not belong to the expected identity.
// Both are reported the same way so callers cannot tell them apart.
type AuthenticationFailure struct{}

func (e *AuthenticationFailure) Error() string {
	return "invalid password or corrupted data"
}

// DecodingError is returned for envelopes that are not valid base64 or are
// shorter than the structural minimum, and for malformed file plaintext.
type DecodingError struct {
	Reason string
}

func (e *DecodingError) Error() string {
	return "malformed envelope: " + e.Reason
}

// IsConfigurationError checks if err is or wraps a ConfigurationError
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsValidationError checks if err is or wraps a ValidationError
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsAuthenticationFailure checks if err is or wraps an AuthenticationFailure
func IsAuthenticationFailure(err error) bool {
	var target *AuthenticationFailure
	return errors.As(err, &target)
}

// IsDecodingError checks if err is or wraps a DecodingError
func IsDecodingError(err error) bool {
	var target *DecodingError
	return errors.As(err, &target)
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func decodingErrorf(format string, args ...any) error {
	return &DecodingError{Reason: fmt.Sprintf(format, args...)}
}
