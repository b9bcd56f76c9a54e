package crypto

import (
	"encoding/base64"
)

// Envelope layouts, all base64 (standard alphabet, padded):
//
//	system:   nonce(24) || ciphertext+tag
//	password: salt(16) || nonce(24) || ciphertext+tag
const (
	minSystemEnvelope   = NonceSize + TagSize
	minPasswordEnvelope = SaltSize + NonceSize + TagSize
)

// EncodeSystem packs a system-key envelope.
func EncodeSystem(nonce, ciphertext []byte) string {
	buf := make([]byte, 0, len(nonce)+len(ciphertext))
	buf = append(buf, nonce...)
	buf = append(buf, ciphertext...)
	return base64.StdEncoding.EncodeToString(buf)
}

// DecodeSystem splits a system-key envelope into nonce and ciphertext.
func DecodeSystem(s string) (nonce, ciphertext []byte, err error) {
	raw, err := decodeBase64(s)
	if err != nil {
		return nil, nil, err
	}
	if len(raw) < minSystemEnvelope {
		return nil, nil, decodingErrorf("system envelope is %d bytes, need at least %d", len(raw), minSystemEnvelope)
	}
	return raw[:NonceSize], raw[NonceSize:], nil
}

// EncodePassword packs a password envelope.
func EncodePassword(salt, nonce, ciphertext []byte) string {
	buf := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext))
	buf = append(buf, salt...)
	buf = append(buf, nonce...)
	buf = append(buf, ciphertext...)
	return base64.StdEncoding.EncodeToString(buf)
}

// DecodePassword splits a password envelope into salt, nonce and ciphertext.
func DecodePassword(s string) (salt, nonce, ciphertext []byte, err error) {
	raw, err := decodeBase64(s)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(raw) < minPasswordEnvelope {
		return nil, nil, nil, decodingErrorf("password envelope is %d bytes, need at least %d", len(raw), minPasswordEnvelope)
	}
	return raw[:SaltSize], raw[SaltSize : SaltSize+NonceSize], raw[SaltSize+NonceSize:], nil
}

func decodeBase64(s string) ([]byte, error) {
	if s == "" {
		return nil, decodingErrorf("envelope is empty")
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, decodingErrorf("invalid base64: %v", err)
	}
	return raw, nil
}
