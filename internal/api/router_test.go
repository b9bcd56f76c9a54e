package api

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronos-capsule/chronos/ethereum"
	"github.com/chronos-capsule/chronos/internal/crypto"
	"github.com/chronos-capsule/chronos/internal/db"
	"github.com/chronos-capsule/chronos/internal/handler"
	"github.com/chronos-capsule/chronos/internal/model"
	"github.com/chronos-capsule/chronos/internal/wallet"
	"github.com/chronos-capsule/chronos/solana"
)

type offlineChain struct {
	wallet.Chain
}

func (offlineChain) Balance(ctx context.Context, address string) (string, error) {
	return "0.000000000", nil
}

func newTestRouter(t *testing.T, system *crypto.SystemCipher) http.Handler {
	t.Helper()

	sqlDB, err := db.NewInMemoryDB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	repo, err := wallet.NewSQLiteRepository(sqlDB)
	require.NoError(t, err)

	service := wallet.NewService(nil, repo, system, ethereum.New(""), offlineChain{Chain: solana.New("")})
	return SetupRouter(
		handler.NewWalletHandler(service, nil),
		handler.NewCapsuleHandler(system, 1<<20, 2, nil),
	)
}

func newSystemCipher(t *testing.T) *crypto.SystemCipher {
	t.Helper()
	system, err := crypto.NewSystemCipher("router-test-system-secret-0123456789")
	require.NoError(t, err)
	return system
}

func doJSON(t *testing.T, h http.Handler, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRequireUser(t *testing.T) {
	router := newTestRouter(t, newSystemCipher(t))

	rec := doJSON(t, router, http.MethodGet, "/wallets", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, model.CodeUnauthorized, decodeBody[model.ErrorResponse](t, rec).Code)
}

func TestWalletLifecycle(t *testing.T) {
	router := newTestRouter(t, newSystemCipher(t))

	rec := doJSON(t, router, http.MethodPost, "/wallets", "alice", model.GenerateWalletRequest{Chain: ethereum.Name})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[model.GenerateWalletResponse](t, rec)
	assert.Equal(t, "system", created.Mode)
	assert.NotEmpty(t, created.QR)

	// system-mode unlock needs no body
	rec = doJSON(t, router, http.MethodPost, "/wallets/"+created.ID+"/private-key", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	pk := decodeBody[model.UnlockResponse](t, rec).PrivateKey
	addr, err := ethereum.New("").AddressFromPrivateKey(pk)
	require.NoError(t, err)
	assert.Equal(t, created.Address, addr)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	// another user cannot see it
	rec = doJSON(t, router, http.MethodGet, "/wallets/"+created.ID+"/envelope", "mallory", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// convert to password mode
	rec = doJSON(t, router, http.MethodPost, "/wallets/"+created.ID+"/password", "alice",
		model.ChangePasswordRequest{NewPassword: "alice-secret"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	converted := decodeBody[model.WalletResponse](t, rec)
	assert.Equal(t, "password", converted.Mode)
	assert.NotEqual(t, created.ID, converted.ID)

	rec = doJSON(t, router, http.MethodGet, "/wallets/"+converted.ID+"/envelope", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeBody[model.EnvelopeResponse](t, rec)
	assert.Equal(t, "password", env.Mode)
	assert.NotEmpty(t, env.Salt)

	rec = doJSON(t, router, http.MethodPost, "/wallets/"+converted.ID+"/verify-password", "alice",
		model.UnlockRequest{Password: "alice-secret"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[model.VerifyPasswordResponse](t, rec).Valid)

	rec = doJSON(t, router, http.MethodPost, "/wallets/"+converted.ID+"/private-key", "alice",
		model.UnlockRequest{Password: "not-alices"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid password or corrupted data", decodeBody[model.ErrorResponse](t, rec).Error)

	rec = doJSON(t, router, http.MethodPost, "/wallets/"+converted.ID+"/private-key", "alice",
		model.UnlockRequest{Password: "alice-secret"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pk, decodeBody[model.UnlockResponse](t, rec).PrivateKey)

	// the superseded record is kept but inactive
	rec = doJSON(t, router, http.MethodPost, "/wallets/"+created.ID+"/password", "alice",
		model.ChangePasswordRequest{NewPassword: "another-secret"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/wallets?active=true", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	active := decodeBody[model.WalletListResponse](t, rec)
	require.Len(t, active.Wallets, 1)
	assert.Equal(t, converted.ID, active.Wallets[0].ID)

	rec = doJSON(t, router, http.MethodGet, "/wallets", "alice", nil)
	all := decodeBody[model.WalletListResponse](t, rec)
	assert.Len(t, all.Wallets, 2)
}

func TestGenerateValidation(t *testing.T) {
	router := newTestRouter(t, newSystemCipher(t))

	rec := doJSON(t, router, http.MethodPost, "/wallets", "alice",
		model.GenerateWalletRequest{Chain: ethereum.Name, Password: "short"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/wallets", "alice", model.GenerateWalletRequest{Chain: "bitcoin"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/wallets", "alice", "not an object")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMissingSystemKeyReturns503(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/wallets", "alice", model.GenerateWalletRequest{Chain: solana.Name})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, model.CodeConfiguration, decodeBody[model.ErrorResponse](t, rec).Code)
}

func TestBalance(t *testing.T) {
	router := newTestRouter(t, newSystemCipher(t))

	rec := doJSON(t, router, http.MethodPost, "/wallets", "alice", model.GenerateWalletRequest{Chain: solana.Name})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[model.GenerateWalletResponse](t, rec)

	rec = doJSON(t, router, http.MethodGet, "/wallets/"+created.ID+"/balance", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	bal := decodeBody[model.BalanceResponse](t, rec)
	assert.Equal(t, "SOL", bal.Symbol)
	assert.Equal(t, created.Address, bal.Address)
}

type upload struct {
	name, contentType string
	content           []byte
}

func doUpload(t *testing.T, h http.Handler, userID, password string, files ...upload) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, f := range files {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+f.name+`"`)
		hdr.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	if password != "" {
		require.NoError(t, mw.WriteField("password", password))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/capsules/encrypt", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(UserIDHeader, userID)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCapsuleRoundTrip(t *testing.T) {
	router := newTestRouter(t, newSystemCipher(t))

	photo := bytes.Repeat([]byte{0xAB}, 12345)
	notes := []byte("remember the milk")

	for _, password := range []string{"", "capsule-password"} {
		rec := doUpload(t, router, "alice", password,
			upload{name: "photo.png", contentType: "image/png", content: photo},
			upload{name: "notes.txt", contentType: "application/octet-stream", content: notes},
		)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decodeBody[model.CapsuleEncryptResponse](t, rec)
		require.Len(t, resp.Envelopes, 2)
		assert.Equal(t, "image/png", resp.Envelopes[0].MimeType)
		assert.Equal(t, int64(12345), resp.Envelopes[0].SizeBytes)
		assert.Contains(t, resp.Envelopes[1].MimeType, "text/plain")

		rec = doJSON(t, router, http.MethodPost, "/capsules/decrypt", "alice",
			model.CapsuleDecryptRequest{Envelope: resp.Envelopes[0].Envelope, Password: password})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		got, err := io.ReadAll(rec.Body)
		require.NoError(t, err)
		assert.Equal(t, photo, got)
		sum := sha256.Sum256(photo)
		assert.Equal(t, hex.EncodeToString(sum[:]), rec.Header().Get(handler.ContentSHA256Header))
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "photo.png")
	}
}

func TestCapsuleFailures(t *testing.T) {
	router := newTestRouter(t, newSystemCipher(t))

	rec := doUpload(t, router, "alice", "capsule-password",
		upload{name: "a.txt", contentType: "text/plain", content: []byte("hello")})
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeBody[model.CapsuleEncryptResponse](t, rec).Envelopes[0].Envelope

	rec = doJSON(t, router, http.MethodPost, "/capsules/decrypt", "alice",
		model.CapsuleDecryptRequest{Envelope: env, Password: "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/capsules/decrypt", "alice",
		model.CapsuleDecryptRequest{Envelope: "!!not base64!!", Password: "capsule-password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid password or corrupted data", decodeBody[model.ErrorResponse](t, rec).Error)

	rec = doUpload(t, router, "alice", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	big := bytes.Repeat([]byte{1}, 2<<20)
	rec = doUpload(t, router, "alice", "", upload{name: "big.bin", contentType: "application/octet-stream", content: big})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
