package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/chronos-capsule/chronos/internal/crypto"
	"github.com/chronos-capsule/chronos/internal/model"
	"github.com/chronos-capsule/chronos/internal/wallet"
)

// authFailedMessage is shared by decoding and authentication failures so a
// caller cannot tell a corrupt envelope from a wrong password.
const authFailedMessage = "invalid password or corrupted data"

type userIDKey struct{}

// WithUserID returns a context carrying the authenticated caller id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the caller id set by WithUserID.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok && userID != ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError writes a JSON error body with the given status and code.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, model.ErrorResponse{Error: message, Code: code})
}

// writeServiceError maps domain errors to HTTP responses.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &maxBytesErr):
		WriteError(w, http.StatusRequestEntityTooLarge, model.CodeValidation, "upload too large")
	case crypto.IsValidationError(err):
		WriteError(w, http.StatusBadRequest, model.CodeValidation, err.Error())
	case errors.Is(err, wallet.ErrUnsupportedChain):
		WriteError(w, http.StatusBadRequest, model.CodeValidation, err.Error())
	case crypto.IsDecodingError(err), crypto.IsAuthenticationFailure(err):
		WriteError(w, http.StatusUnauthorized, model.CodeAuthentication, authFailedMessage)
	case crypto.IsConfigurationError(err):
		logger.Error("Encryption not configured", zap.String("op", op), zap.Error(err))
		WriteError(w, http.StatusServiceUnavailable, model.CodeConfiguration, "encryption is not configured")
		return
	case errors.Is(err, wallet.ErrRecordNotFound):
		WriteError(w, http.StatusNotFound, model.CodeNotFound, "wallet not found")
	case errors.Is(err, wallet.ErrRecordInactive):
		WriteError(w, http.StatusConflict, model.CodeConflict, "wallet has been superseded")
	default:
		logger.Error("Request failed", zap.String("op", op), zap.Error(err))
		WriteError(w, http.StatusInternalServerError, model.CodeInternal, "internal error")
		return
	}

	logger.Warn("Request rejected", zap.String("op", op), zap.String("error", err.Error()))
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &crypto.ValidationError{Reason: "invalid JSON body: " + err.Error()}
	}
	return nil
}

// requireUser extracts the caller id or writes 401.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, model.CodeUnauthorized, "missing user identity")
		return "", false
	}
	return userID, true
}
