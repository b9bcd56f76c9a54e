package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// EncryptionKey is validated by crypto.NewSystemCipher, not here, so a
// missing key surfaces as a ConfigurationError.
type Config struct {
	Port              string `envconfig:"PORT" default:"8080"`
	EncryptionKey     string `envconfig:"ENCRYPTION_KEY"`
	DatabasePath      string `envconfig:"DATABASE_PATH" default:"chronos.db"`
	LogLevel          string `envconfig:"LOG_LEVEL" default:"info"`
	EthereumRPCURL    string `envconfig:"ETHEREUM_RPC_URL" default:"https://ethereum-sepolia-rpc.publicnode.com"`
	SolanaRPCURL      string `envconfig:"SOLANA_RPC_URL" default:"https://api.devnet.solana.com"`
	KDFMaxConcurrency int    `envconfig:"KDF_MAX_CONCURRENCY" default:"4"`
	MaxUploadMB       int64  `envconfig:"MAX_UPLOAD_MB" default:"25"`
	BatchConcurrency  int    `envconfig:"BATCH_CONCURRENCY" default:"4"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c, err := Load()
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Load reads a fresh Config from the environment without touching the global one.
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if c.KDFMaxConcurrency < 1 {
		return nil, fmt.Errorf("KDF_MAX_CONCURRENCY must be at least 1, got %d", c.KDFMaxConcurrency)
	}
	if c.BatchConcurrency < 1 {
		return nil, fmt.Errorf("BATCH_CONCURRENCY must be at least 1, got %d", c.BatchConcurrency)
	}
	if c.MaxUploadMB < 1 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be at least 1, got %d", c.MaxUploadMB)
	}
	return c, nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetEncryptionKey returns the system key secret
func GetEncryptionKey() string {
	return Get().EncryptionKey
}

// GetDatabasePath returns the SQLite file path
func GetDatabasePath() string {
	return Get().DatabasePath
}

// GetLogLevel returns the zap level name
func GetLogLevel() string {
	return Get().LogLevel
}

// GetEthereumRPCURL returns Ethereum RPC URL from configuration
func GetEthereumRPCURL() string {
	return Get().EthereumRPCURL
}

// GetSolanaRPCURL returns Solana RPC URL from configuration
func GetSolanaRPCURL() string {
	return Get().SolanaRPCURL
}

// GetKDFMaxConcurrency returns how many Argon2id derivations may run at once
func GetKDFMaxConcurrency() int {
	return Get().KDFMaxConcurrency
}

// GetMaxUploadBytes returns the multipart upload limit in bytes
func GetMaxUploadBytes() int64 {
	return Get().MaxUploadMB << 20
}

// GetBatchConcurrency returns the worker count for multi-file encryption
func GetBatchConcurrency() int {
	return Get().BatchConcurrency
}

// PromptForPassword reads a password from the terminal without echo.
// The caller must clear the returned slice after use.
func PromptForPassword(label string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run interactively to enter a password")
	}
	fmt.Fprintf(os.Stderr, "%s: ", label)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	clear(raw)
	return out, nil
}
