package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chronos-capsule/chronos/internal/crypto"
	"github.com/chronos-capsule/chronos/internal/model"
	"github.com/chronos-capsule/chronos/internal/wallet"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", &crypto.ValidationError{Reason: "password too short"}, http.StatusBadRequest, model.CodeValidation},
		{"unsupported chain", fmt.Errorf("%w: %q", wallet.ErrUnsupportedChain, "doge"), http.StatusBadRequest, model.CodeValidation},
		{"authentication", &crypto.AuthenticationFailure{}, http.StatusUnauthorized, model.CodeAuthentication},
		{"decoding", &crypto.DecodingError{Reason: "too short"}, http.StatusUnauthorized, model.CodeAuthentication},
		{"configuration", &crypto.ConfigurationError{Setting: crypto.SystemKeySetting}, http.StatusServiceUnavailable, model.CodeConfiguration},
		{"not found", wallet.ErrRecordNotFound, http.StatusNotFound, model.CodeNotFound},
		{"inactive", fmt.Errorf("wallet record x: %w", wallet.ErrRecordInactive), http.StatusConflict, model.CodeConflict},
		{"too large", &http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge, model.CodeValidation},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError, model.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, zap.NewNop(), "test", tt.err)

			assert.Equal(t, tt.status, rec.Code)
			var body model.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestWriteServiceError_SameMessageForDecodeAndAuth(t *testing.T) {
	decode := httptest.NewRecorder()
	writeServiceError(decode, zap.NewNop(), "test", &crypto.DecodingError{Reason: "invalid base64"})
	auth := httptest.NewRecorder()
	writeServiceError(auth, zap.NewNop(), "test", &crypto.AuthenticationFailure{})

	assert.Equal(t, auth.Body.String(), decode.Body.String())
	assert.NotContains(t, decode.Body.String(), "base64")
}

func TestUserIDFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := UserIDFromContext(req.Context())
	assert.False(t, ok)

	ctx := WithUserID(req.Context(), "alice")
	userID, ok := UserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice", userID)

	rec := httptest.NewRecorder()
	_, ok = requireUser(rec, req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
