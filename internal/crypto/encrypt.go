package crypto

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

const defaultBatchConcurrency = 4

// EncryptWithPassword seals secret under a key derived from password and
// returns a password envelope. Password rules are checked before any
// cryptographic work.
func EncryptWithPassword(secret []byte, password string) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", err
	}

	// Generate salt and nonce
	salt, err := GenerateSalt()
	if err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	nonce, err := GenerateNonce()
	if err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Derive key from password
	key, err := DeriveKey(password, salt)
	if err != nil {
		return "", err
	}
	defer clear(key)

	ciphertext, err := Seal(key, nonce, secret)
	if err != nil {
		return "", err
	}

	return EncodePassword(salt, nonce, ciphertext), nil
}

// EncryptPrivateKeyWithPassword seals a hex private key in password mode.
func EncryptPrivateKeyWithPassword(privateKeyHex, password string) (string, error) {
	if privateKeyHex == "" {
		return "", validationErrorf("private key is required")
	}
	if err := ValidatePassword(password); err != nil {
		return "", err
	}

	plaintext := []byte(privateKeyHex)
	defer clear(plaintext)

	return EncryptWithPassword(plaintext, password)
}

// EncryptFileWithPassword seals a file together with its metadata.
func EncryptFileWithPassword(f *File, password string) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", err
	}

	plaintext, err := packFile(f)
	if err != nil {
		return "", err
	}
	defer clear(plaintext)

	return EncryptWithPassword(plaintext, password)
}

// EncryptFilesWithPassword seals several files in parallel. Each file gets its
// own salt and nonce. The result is in input order; the first error aborts
// the batch.
func EncryptFilesWithPassword(ctx context.Context, files []*File, password string, concurrency int) ([]string, error) {
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	return encryptBatch(ctx, files, concurrency, func(f *File) (string, error) {
		return EncryptFileWithPassword(f, password)
	})
}

// Encrypt seals secret with the system key.
func (c *SystemCipher) Encrypt(secret []byte) (string, error) {
	if err := c.ready(); err != nil {
		return "", err
	}

	nonce, err := GenerateNonce()
	if err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext, err := Seal(c.key[:], nonce, secret)
	if err != nil {
		return "", err
	}

	return EncodeSystem(nonce, ciphertext), nil
}

// EncryptPrivateKey seals a hex private key in system mode.
func (c *SystemCipher) EncryptPrivateKey(privateKeyHex string) (string, error) {
	if err := c.ready(); err != nil {
		return "", err
	}
	if privateKeyHex == "" {
		return "", validationErrorf("private key is required")
	}

	plaintext := []byte(privateKeyHex)
	defer clear(plaintext)

	return c.Encrypt(plaintext)
}

// EncryptFile seals a file and its metadata with the system key.
func (c *SystemCipher) EncryptFile(f *File) (string, error) {
	if err := c.ready(); err != nil {
		return "", err
	}

	plaintext, err := packFile(f)
	if err != nil {
		return "", err
	}
	defer clear(plaintext)

	return c.Encrypt(plaintext)
}

// EncryptFiles is the system-key analogue of EncryptFilesWithPassword.
func (c *SystemCipher) EncryptFiles(ctx context.Context, files []*File, concurrency int) ([]string, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return encryptBatch(ctx, files, concurrency, c.EncryptFile)
}

func encryptBatch(ctx context.Context, files []*File, concurrency int, seal func(*File) (string, error)) ([]string, error) {
	if len(files) == 0 {
		return nil, validationErrorf("at least one file is required")
	}
	if concurrency < 1 {
		concurrency = defaultBatchConcurrency
	}

	envelopes := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, f := range files {
		g.Go(func() error {
			// Skip files not yet started once another one has failed.
			if err := ctx.Err(); err != nil {
				return err
			}
			env, err := seal(f)
			if err != nil {
				return fmt.Errorf("file %d: %w", i, err)
			}
			envelopes[i] = env
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return envelopes, nil
}
