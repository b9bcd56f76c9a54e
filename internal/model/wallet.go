package model

import "time"

// GenerateWalletRequest represents request for POST /wallets
type GenerateWalletRequest struct {
	Chain    string `json:"chain"`
	Password string `json:"password,omitempty"`
}

// WalletResponse describes a stored wallet record without its secret
type WalletResponse struct {
	ID            string     `json:"id"`
	Chain         string     `json:"chain"`
	Address       string     `json:"address"`
	Mode          string     `json:"mode"` // "system" or "password"
	UserMade      bool       `json:"userMade"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
	DeactivatedAt *time.Time `json:"deactivatedAt,omitempty"`
	SupersededBy  string     `json:"supersededBy,omitempty"`
}

// GenerateWalletResponse represents response for POST /wallets
type GenerateWalletResponse struct {
	WalletResponse
	QR string `json:"QR"` // base64 PNG of the address
}

// WalletListResponse represents response for GET /wallets
type WalletListResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}

// EnvelopeResponse represents response for GET /wallets/{id}/envelope.
// Salt is set only in password mode.
type EnvelopeResponse struct {
	ID       string `json:"id"`
	Mode     string `json:"mode"`
	Envelope string `json:"envelope"`
	Salt     string `json:"salt,omitempty"`
}

// UnlockRequest carries the wallet password; empty for system-key wallets
type UnlockRequest struct {
	Password string `json:"password,omitempty"`
}

// UnlockResponse represents response for POST /wallets/{id}/private-key
type UnlockResponse struct {
	PrivateKey string `json:"privateKey"`
}

// VerifyPasswordResponse represents response for POST /wallets/{id}/verify-password
type VerifyPasswordResponse struct {
	Valid bool `json:"valid"`
}

// ChangePasswordRequest represents request for POST /wallets/{id}/password.
// An empty NewPassword moves the wallet back to system-key mode.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// BalanceResponse represents response for GET /wallets/{id}/balance
type BalanceResponse struct {
	Address string `json:"address"`
	Chain   string `json:"chain"`
	Balance string `json:"balance"`
	Symbol  string `json:"symbol"`
}
