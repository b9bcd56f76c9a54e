package wallet

import "time"

// Record pairs an on-chain address with exactly one envelope holding its
// private key. Records are immutable apart from deactivation: a replacement
// is a new record, and the old one is kept for history.
type Record struct {
	ID            string
	UserID        string
	Chain         string
	Address       string
	Envelope      string // base64 envelope, layout depends on UserMade
	UserMade      bool   // true: password mode, false: system-key mode
	IsActive      bool
	CreatedAt     time.Time
	DeactivatedAt *time.Time
	SupersededBy  string
}
