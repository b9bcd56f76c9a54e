package handler

import (
	"encoding/base64"
	"net/http"

	"go.uber.org/zap"

	"github.com/chronos-capsule/chronos/internal/common"
	"github.com/chronos-capsule/chronos/internal/model"
	"github.com/chronos-capsule/chronos/internal/wallet"
)

// WalletHandler serves the caller's custodial wallets
type WalletHandler struct {
	service *wallet.Service
	logger  *zap.Logger
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(service *wallet.Service, logger *zap.Logger) *WalletHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WalletHandler{service: service, logger: logger}
}

// Generate handles POST /wallets
// @Summary      Generate new wallet
// @Description  Generates a wallet on the given chain. Without a password the key is sealed with the system key; with one it is sealed under the password and superseded wallets on the same chain are deactivated.
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                        true  "Caller id"
// @Param        request    body      model.GenerateWalletRequest   true  "Chain and optional password"
// @Success      201        {object}  model.GenerateWalletResponse
// @Failure      400        {object}  model.ErrorResponse
// @Failure      503        {object}  model.ErrorResponse
// @Router       /wallets [post]
func (h *WalletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.GenerateWalletRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, h.logger, "generate", err)
		return
	}

	rec, err := h.service.Generate(r.Context(), userID, req.Chain, req.Password)
	if err != nil {
		writeServiceError(w, h.logger, "generate", err)
		return
	}

	qr, err := common.AddressQRCode(rec.Address)
	if err != nil {
		// The record is stored; respond without a QR.
		h.logger.Warn("Failed to render address QR", zap.String("record_id", rec.ID), zap.Error(err))
	}

	writeJSON(w, http.StatusCreated, model.GenerateWalletResponse{
		WalletResponse: toWalletResponse(rec),
		QR:             qr,
	})
}

// List handles GET /wallets
// @Summary      List wallets
// @Description  Lists the caller's wallet records, newest first
// @Tags         wallets
// @Produce      json
// @Param        X-User-ID  header    string  true   "Caller id"
// @Param        active     query     bool    false  "Only active records"
// @Success      200        {object}  model.WalletListResponse
// @Router       /wallets [get]
func (h *WalletHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	activeOnly := r.URL.Query().Get("active") == "true"
	records, err := h.service.List(r.Context(), userID, activeOnly)
	if err != nil {
		writeServiceError(w, h.logger, "list", err)
		return
	}

	resp := model.WalletListResponse{Wallets: make([]model.WalletResponse, 0, len(records))}
	for _, rec := range records {
		resp.Wallets = append(resp.Wallets, toWalletResponse(rec))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Envelope handles GET /wallets/{id}/envelope
// @Summary      Get wallet envelope
// @Description  Returns the stored envelope and its protection mode. Password envelopes are meant to be decrypted client-side.
// @Tags         wallets
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller id"
// @Param        id         path      string  true  "Wallet id"
// @Success      200        {object}  model.EnvelopeResponse
// @Failure      404        {object}  model.ErrorResponse
// @Router       /wallets/{id}/envelope [get]
func (h *WalletHandler) Envelope(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	rec, mode, err := h.service.Envelope(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, h.logger, "envelope", err)
		return
	}

	resp := model.EnvelopeResponse{ID: rec.ID, Mode: mode.String(), Envelope: rec.Envelope}
	if pd, ok := mode.(wallet.PasswordDerived); ok {
		resp.Salt = base64.StdEncoding.EncodeToString(pd.Salt)
	}
	writeJSON(w, http.StatusOK, resp)
}

// PrivateKey handles POST /wallets/{id}/private-key
// @Summary      Unlock private key
// @Description  Decrypts the wallet's private key. System-key wallets need no password; password wallets are checked against the stored address.
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string               true   "Caller id"
// @Param        id         path      string               true   "Wallet id"
// @Param        request    body      model.UnlockRequest  false  "Wallet password"
// @Success      200        {object}  model.UnlockResponse
// @Failure      401        {object}  model.ErrorResponse
// @Failure      404        {object}  model.ErrorResponse
// @Router       /wallets/{id}/private-key [post]
func (h *WalletHandler) PrivateKey(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.UnlockRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeServiceError(w, h.logger, "unlock", err)
			return
		}
	}

	privateKey, err := h.service.UnlockPrivateKey(r.Context(), userID, r.PathValue("id"), req.Password)
	if err != nil {
		writeServiceError(w, h.logger, "unlock", err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, model.UnlockResponse{PrivateKey: privateKey})
}

// VerifyPassword handles POST /wallets/{id}/verify-password
// @Summary      Verify wallet password
// @Description  Checks a password against a password-protected wallet without returning the key
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string               true  "Caller id"
// @Param        id         path      string               true  "Wallet id"
// @Param        request    body      model.UnlockRequest  true  "Wallet password"
// @Success      200        {object}  model.VerifyPasswordResponse
// @Failure      400        {object}  model.ErrorResponse
// @Router       /wallets/{id}/verify-password [post]
func (h *WalletHandler) VerifyPassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.UnlockRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, h.logger, "verify-password", err)
		return
	}

	err := h.service.VerifyPassword(r.Context(), userID, r.PathValue("id"), req.Password)
	if err != nil {
		writeServiceError(w, h.logger, "verify-password", err)
		return
	}
	writeJSON(w, http.StatusOK, model.VerifyPasswordResponse{Valid: true})
}

// ChangePassword handles POST /wallets/{id}/password
// @Summary      Change wallet protection
// @Description  Re-seals the wallet key under a new password, or under the system key when newPassword is empty. The old record is deactivated and superseded by the returned one.
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                       true  "Caller id"
// @Param        id         path      string                       true  "Wallet id"
// @Param        request    body      model.ChangePasswordRequest  true  "Current and new password"
// @Success      200        {object}  model.WalletResponse
// @Failure      401        {object}  model.ErrorResponse
// @Failure      409        {object}  model.ErrorResponse
// @Router       /wallets/{id}/password [post]
func (h *WalletHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, h.logger, "change-password", err)
		return
	}

	rec, err := h.service.ChangeProtection(r.Context(), userID, r.PathValue("id"), req.CurrentPassword, req.NewPassword)
	if err != nil {
		writeServiceError(w, h.logger, "change-password", err)
		return
	}
	writeJSON(w, http.StatusOK, toWalletResponse(rec))
}

// Balance handles GET /wallets/{id}/balance
// @Summary      Get wallet balance
// @Description  Gets the native on-chain balance of the wallet address
// @Tags         wallets
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller id"
// @Param        id         path      string  true  "Wallet id"
// @Success      200        {object}  model.BalanceResponse
// @Router       /wallets/{id}/balance [get]
func (h *WalletHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	rec, balance, symbol, err := h.service.Balance(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, h.logger, "balance", err)
		return
	}

	writeJSON(w, http.StatusOK, model.BalanceResponse{
		Address: rec.Address,
		Chain:   rec.Chain,
		Balance: balance,
		Symbol:  symbol,
	})
}

func toWalletResponse(rec *wallet.Record) model.WalletResponse {
	mode := wallet.ProtectionMode(wallet.SystemKey{})
	if rec.UserMade {
		mode = wallet.PasswordDerived{}
	}
	return model.WalletResponse{
		ID:            rec.ID,
		Chain:         rec.Chain,
		Address:       rec.Address,
		Mode:          mode.String(),
		UserMade:      rec.UserMade,
		IsActive:      rec.IsActive,
		CreatedAt:     rec.CreatedAt,
		DeactivatedAt: rec.DeactivatedAt,
		SupersededBy:  rec.SupersededBy,
	}
}
