package wallet

import (
	"fmt"

	"github.com/chronos-capsule/chronos/internal/crypto"
)

// ProtectionMode says how a record's envelope is protected. The set of modes
// is closed: only types in this package implement it, and every decrypt path
// switches over them with a default branch returning ErrUnknownMode.
type ProtectionMode interface {
	isProtectionMode()
	// UserMade is the persisted flag for this mode.
	UserMade() bool
	String() string
}

// SystemKey envelopes are sealed with the server-held key.
type SystemKey struct{}

func (SystemKey) isProtectionMode() {}
func (SystemKey) UserMade() bool    { return false }
func (SystemKey) String() string    { return "system" }

// PasswordDerived envelopes are sealed with a key derived from the owner's
// password and the salt carried in the envelope.
type PasswordDerived struct {
	Salt []byte
}

func (PasswordDerived) isProtectionMode() {}
func (PasswordDerived) UserMade() bool    { return true }
func (PasswordDerived) String() string    { return "password" }

// ModeOf returns the protection mode of a record. For password mode the salt
// is parsed out of the envelope, which also validates its layout.
func ModeOf(rec *Record) (ProtectionMode, error) {
	if !rec.UserMade {
		return SystemKey{}, nil
	}

	salt, _, _, err := crypto.DecodePassword(rec.Envelope)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", rec.ID, err)
	}
	return PasswordDerived{Salt: salt}, nil
}
