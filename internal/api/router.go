package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/chronos-capsule/chronos/internal/handler"
)

// SetupRouter sets up router with handlers
func SetupRouter(wallets *handler.WalletHandler, capsules *handler.CapsuleHandler) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Wallet endpoints
	mux.Handle("POST /wallets", RequireUser(http.HandlerFunc(wallets.Generate)))
	mux.Handle("GET /wallets", RequireUser(http.HandlerFunc(wallets.List)))
	mux.Handle("GET /wallets/{id}/envelope", RequireUser(http.HandlerFunc(wallets.Envelope)))
	mux.Handle("POST /wallets/{id}/private-key", RequireUser(http.HandlerFunc(wallets.PrivateKey)))
	mux.Handle("POST /wallets/{id}/verify-password", RequireUser(http.HandlerFunc(wallets.VerifyPassword)))
	mux.Handle("POST /wallets/{id}/password", RequireUser(http.HandlerFunc(wallets.ChangePassword)))
	mux.Handle("GET /wallets/{id}/balance", RequireUser(http.HandlerFunc(wallets.Balance)))

	// Capsule endpoints
	mux.Handle("POST /capsules/encrypt", RequireUser(http.HandlerFunc(capsules.Encrypt)))
	mux.Handle("POST /capsules/decrypt", RequireUser(http.HandlerFunc(capsules.Decrypt)))

	return mux
}
