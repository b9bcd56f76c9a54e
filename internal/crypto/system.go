package crypto

// SystemKeySetting names the environment variable holding the system secret.
const SystemKeySetting = "ENCRYPTION_KEY"

// SystemCipher protects secrets the server must be able to decrypt on its own,
// such as system-generated wallet keys. The key is fixed for the lifetime of a
// deployment and never goes through the password KDF.
type SystemCipher struct {
	key [KeySize]byte
}

// NewSystemCipher builds the cipher from the first 32 bytes of secret.
func NewSystemCipher(secret string) (*SystemCipher, error) {
	if secret == "" {
		return nil, &ConfigurationError{Setting: SystemKeySetting}
	}
	if len(secret) < KeySize {
		return nil, &ConfigurationError{Setting: SystemKeySetting, Reason: "must be at least 32 bytes"}
	}

	c := &SystemCipher{}
	copy(c.key[:], secret[:KeySize])
	return c, nil
}

func (c *SystemCipher) ready() error {
	if c == nil {
		return &ConfigurationError{Setting: SystemKeySetting}
	}
	return nil
}
