package crypto

import (
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// NonceSize is the extended XChaCha20 nonce; random nonces are safe at this width.
	NonceSize = chacha20poly1305.NonceSizeX
	// TagSize is the Poly1305 authenticator appended to every ciphertext.
	TagSize = chacha20poly1305.Overhead
)

// GenerateNonce returns a fresh random 24-byte nonce.
func GenerateNonce() ([]byte, error) {
	return Default().RandomBytes(NonceSize)
}

// Seal encrypts plaintext with XChaCha20-Poly1305. No associated data is used:
// everything that needs protecting travels inside the plaintext.
func Seal(key, nonce, plaintext []byte) ([]byte, error) {
	aead, err := newAEAD(key, nonce)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// Open authenticates and decrypts. A tag mismatch is an AuthenticationFailure
// and no plaintext is returned.
func Open(key, nonce, ciphertext []byte) ([]byte, error) {
	aead, err := newAEAD(key, nonce)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < TagSize {
		return nil, &AuthenticationFailure{}
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, &AuthenticationFailure{}
	}
	return plaintext, nil
}

type aeadCipher interface {
	Seal(dst, nonce, plaintext, additionalData []byte) []byte
	Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
}

func newAEAD(key, nonce []byte) (aeadCipher, error) {
	if len(key) != KeySize {
		return nil, validationErrorf("key must be %d bytes, got %d", KeySize, len(key))
	}
	if len(nonce) != NonceSize {
		return nil, validationErrorf("nonce must be %d bytes, got %d", NonceSize, len(nonce))
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, validationErrorf("failed to create cipher: %v", err)
	}
	return aead, nil
}
