package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/chronos-capsule/chronos/docs"
	"github.com/chronos-capsule/chronos/ethereum"
	"github.com/chronos-capsule/chronos/internal/api"
	"github.com/chronos-capsule/chronos/internal/config"
	"github.com/chronos-capsule/chronos/internal/crypto"
	"github.com/chronos-capsule/chronos/internal/db"
	"github.com/chronos-capsule/chronos/internal/handler"
	"github.com/chronos-capsule/chronos/internal/logging"
	"github.com/chronos-capsule/chronos/internal/wallet"
	"github.com/chronos-capsule/chronos/solana"
)

// @title        Chronos API
// @version      1.0
// @description  Custodial wallet keys and time capsule attachments sealed with XChaCha20-Poly1305.
// @BasePath     /
func main() {
	if err := config.Init(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	cfg := config.Get()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		os.Stderr.WriteString("failed to build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	crypto.SetMaxConcurrentDerivations(cfg.KDFMaxConcurrency)

	system, err := crypto.NewSystemCipher(cfg.EncryptionKey)
	if err != nil {
		logger.Fatal("System key unavailable", zap.Error(err))
	}

	sqlDB, err := db.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to open database", zap.String("path", cfg.DatabasePath), zap.Error(err))
	}
	defer sqlDB.Close()

	repo, err := wallet.NewSQLiteRepository(sqlDB)
	if err != nil {
		logger.Fatal("Failed to prepare wallet repository", zap.Error(err))
	}

	service := wallet.NewService(logger.Named("wallet"), repo, system,
		ethereum.New(cfg.EthereumRPCURL),
		solana.New(cfg.SolanaRPCURL),
	)

	router := api.SetupRouter(
		handler.NewWalletHandler(service, logger.Named("http")),
		handler.NewCapsuleHandler(system, config.GetMaxUploadBytes(), cfg.BatchConcurrency, logger.Named("http")),
	)

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server starting", zap.String("addr", srv.Addr), zap.Strings("chains", service.Chains()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
