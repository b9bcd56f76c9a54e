package crypto

// DecryptWithPassword opens a password envelope.
func DecryptWithPassword(envelope, password string) ([]byte, error) {
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	salt, nonce, ciphertext, err := DecodePassword(envelope)
	if err != nil {
		return nil, err
	}

	// Derive key from password
	key, err := DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer clear(key)

	return Open(key, nonce, ciphertext)
}

// DecryptPrivateKeyWithPassword opens a password envelope holding a private key.
func DecryptPrivateKeyWithPassword(envelope, password string) (string, error) {
	plaintext, err := DecryptWithPassword(envelope, password)
	if err != nil {
		return "", err
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	if len(plaintext) == 0 {
		return "", decodingErrorf("envelope holds an empty private key")
	}
	return string(plaintext), nil
}

// DecryptFileWithPassword opens a password envelope holding a file.
func DecryptFileWithPassword(envelope, password string) (*File, error) {
	plaintext, err := DecryptWithPassword(envelope, password)
	if err != nil {
		return nil, err
	}
	defer clear(plaintext)

	return unpackFile(plaintext)
}

// Decrypt opens a system envelope.
func (c *SystemCipher) Decrypt(envelope string) ([]byte, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	nonce, ciphertext, err := DecodeSystem(envelope)
	if err != nil {
		return nil, err
	}

	return Open(c.key[:], nonce, ciphertext)
}

// DecryptPrivateKey opens a system envelope holding a private key.
func (c *SystemCipher) DecryptPrivateKey(envelope string) (string, error) {
	plaintext, err := c.Decrypt(envelope)
	if err != nil {
		return "", err
	}
	defer clear(plaintext)

	if len(plaintext) == 0 {
		return "", decodingErrorf("envelope holds an empty private key")
	}
	return string(plaintext), nil
}

// DecryptFile opens a system envelope holding a file.
func (c *SystemCipher) DecryptFile(envelope string) (*File, error) {
	plaintext, err := c.Decrypt(envelope)
	if err != nil {
		return nil, err
	}
	defer clear(plaintext)

	return unpackFile(plaintext)
}
