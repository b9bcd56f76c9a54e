package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chronos-capsule/chronos/internal/crypto"
)

// Service decides, per record, which protection mode applies and exposes the
// matching decrypt path. The caller's identity is established upstream; the
// service only compares it with the record owner.
type Service struct {
	logger *zap.Logger
	repo   Repository
	system *crypto.SystemCipher
	chains map[string]Chain
	now    func() time.Time
}

// NewService creates a wallet service. A nil system cipher makes every
// system-key operation fail with a ConfigurationError.
func NewService(logger *zap.Logger, repo Repository, system *crypto.SystemCipher, chains ...Chain) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	byName := make(map[string]Chain, len(chains))
	for _, c := range chains {
		byName[c.Name()] = c
	}

	return &Service{
		logger: logger,
		repo:   repo,
		system: system,
		chains: byName,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Chains lists the registered chain names.
func (s *Service) Chains() []string {
	names := make([]string, 0, len(s.chains))
	for name := range s.chains {
		names = append(names, name)
	}
	return names
}

// Generate creates a new wallet for userID on the named chain. An empty
// password selects system-key mode; otherwise the key is sealed under the
// password. Any active wallet the user already has on that chain is
// superseded.
func (s *Service) Generate(ctx context.Context, userID, chainName, password string) (*Record, error) {
	chain, err := s.chain(chainName)
	if err != nil {
		return nil, err
	}

	mode := modeForPassword(password)
	if _, ok := mode.(PasswordDerived); ok {
		if err := crypto.ValidatePassword(password); err != nil {
			return nil, err
		}
	}

	privateKeyHex, address, err := chain.GenerateKey()
	if err != nil {
		s.logger.Error("Failed to generate key", zap.String("chain", chainName), zap.Error(err))
		return nil, err
	}

	envelope, err := s.seal(mode, privateKeyHex, password)
	if err != nil {
		s.logger.Error("Failed to seal private key", zap.String("mode", mode.String()), zap.Error(err))
		return nil, err
	}

	existing, err := s.repo.ListByUser(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	var supersedes []string
	for _, rec := range existing {
		if rec.Chain == chainName {
			supersedes = append(supersedes, rec.ID)
		}
	}

	rec := &Record{
		ID:        uuid.NewString(),
		UserID:    userID,
		Chain:     chainName,
		Address:   address,
		Envelope:  envelope,
		UserMade:  mode.UserMade(),
		IsActive:  true,
		CreatedAt: s.now(),
	}
	if err := s.repo.Replace(ctx, rec, supersedes); err != nil {
		s.logger.Error("Failed to store wallet record", zap.String("record_id", rec.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Wallet generated",
		zap.String("record_id", rec.ID),
		zap.String("chain", chainName),
		zap.String("mode", mode.String()),
		zap.Int("superseded", len(supersedes)),
	)
	return rec, nil
}

// List returns the user's records.
func (s *Service) List(ctx context.Context, userID string, activeOnly bool) ([]*Record, error) {
	return s.repo.ListByUser(ctx, userID, activeOnly)
}

// Envelope returns a record and its protection mode without decrypting
// anything. For password mode the owner decrypts client-side.
func (s *Service) Envelope(ctx context.Context, userID, recordID string) (*Record, ProtectionMode, error) {
	rec, err := s.owned(ctx, userID, recordID)
	if err != nil {
		return nil, nil, err
	}
	mode, err := ModeOf(rec)
	if err != nil {
		return nil, nil, err
	}
	return rec, mode, nil
}

// UnlockPrivateKey returns the plaintext private key of a record. System-key
// records need no password. Password records are decrypted with password and
// then checked with VerifyDerivedIdentity.
func (s *Service) UnlockPrivateKey(ctx context.Context, userID, recordID, password string) (string, error) {
	rec, mode, err := s.Envelope(ctx, userID, recordID)
	if err != nil {
		return "", err
	}

	privateKeyHex, err := s.open(rec, mode, password)
	if err != nil {
		s.logger.Warn("Wallet unlock failed", zap.String("record_id", rec.ID), zap.String("mode", mode.String()), zap.Error(err))
		return "", err
	}

	s.logger.Info("Wallet unlocked", zap.String("record_id", rec.ID), zap.String("mode", mode.String()))
	return privateKeyHex, nil
}

// VerifyPassword checks password against a password-mode record without
// returning the key.
func (s *Service) VerifyPassword(ctx context.Context, userID, recordID, password string) error {
	rec, mode, err := s.Envelope(ctx, userID, recordID)
	if err != nil {
		return err
	}
	if _, ok := mode.(PasswordDerived); !ok {
		return &crypto.ValidationError{Reason: "wallet is not password protected"}
	}

	_, err = s.open(rec, mode, password)
	return err
}

// ChangeProtection re-seals a record's key. currentPassword unlocks the
// existing envelope (ignored in system-key mode); newPassword selects the new
// mode, empty meaning system-key mode. The old record is deactivated and
// points at its replacement.
func (s *Service) ChangeProtection(ctx context.Context, userID, recordID, currentPassword, newPassword string) (*Record, error) {
	rec, mode, err := s.Envelope(ctx, userID, recordID)
	if err != nil {
		return nil, err
	}
	if !rec.IsActive {
		return nil, ErrRecordInactive
	}

	target := modeForPassword(newPassword)
	if _, ok := target.(PasswordDerived); ok {
		if err := crypto.ValidatePassword(newPassword); err != nil {
			return nil, err
		}
	}

	privateKeyHex, err := s.open(rec, mode, currentPassword)
	if err != nil {
		return nil, err
	}

	envelope, err := s.seal(target, privateKeyHex, newPassword)
	if err != nil {
		return nil, err
	}

	replacement := &Record{
		ID:        uuid.NewString(),
		UserID:    rec.UserID,
		Chain:     rec.Chain,
		Address:   rec.Address,
		Envelope:  envelope,
		UserMade:  target.UserMade(),
		IsActive:  true,
		CreatedAt: s.now(),
	}
	if err := s.repo.Replace(ctx, replacement, []string{rec.ID}); err != nil {
		return nil, err
	}

	s.logger.Info("Wallet protection changed",
		zap.String("record_id", rec.ID),
		zap.String("replacement_id", replacement.ID),
		zap.String("from", mode.String()),
		zap.String("to", target.String()),
	)
	return replacement, nil
}

// Balance returns the on-chain balance of a record's address and the currency symbol.
func (s *Service) Balance(ctx context.Context, userID, recordID string) (*Record, string, string, error) {
	rec, err := s.owned(ctx, userID, recordID)
	if err != nil {
		return nil, "", "", err
	}
	chain, err := s.chain(rec.Chain)
	if err != nil {
		return nil, "", "", err
	}

	balance, err := chain.Balance(ctx, rec.Address)
	if err != nil {
		return nil, "", "", err
	}
	return rec, balance, chain.Symbol(), nil
}

func (s *Service) open(rec *Record, mode ProtectionMode, password string) (string, error) {
	switch mode.(type) {
	case SystemKey:
		return s.system.DecryptPrivateKey(rec.Envelope)
	case PasswordDerived:
		chain, err := s.chain(rec.Chain)
		if err != nil {
			return "", err
		}
		privateKeyHex, err := crypto.DecryptPrivateKeyWithPassword(rec.Envelope, password)
		if err != nil {
			return "", err
		}
		if err := VerifyDerivedIdentity(chain, privateKeyHex, rec.Address); err != nil {
			return "", err
		}
		return privateKeyHex, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

func (s *Service) seal(mode ProtectionMode, privateKeyHex, password string) (string, error) {
	switch mode.(type) {
	case SystemKey:
		return s.system.EncryptPrivateKey(privateKeyHex)
	case PasswordDerived:
		return crypto.EncryptPrivateKeyWithPassword(privateKeyHex, password)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

func (s *Service) owned(ctx context.Context, userID, recordID string) (*Record, error) {
	rec, err := s.repo.Get(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if rec.UserID != userID {
		return nil, ErrRecordNotFound
	}
	return rec, nil
}

func (s *Service) chain(name string) (Chain, error) {
	chain, ok := s.chains[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChain, name)
	}
	return chain, nil
}

func modeForPassword(password string) ProtectionMode {
	if password == "" {
		return SystemKey{}
	}
	return PasswordDerived{}
}
