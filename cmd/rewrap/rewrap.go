package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chronos-capsule/chronos/internal/config"
	"github.com/chronos-capsule/chronos/internal/crypto"
)

const (
	modeSystem   = "system"
	modePassword = "password"
)

// keys supplies what each side of a rewrap needs.
type keys struct {
	system      *crypto.SystemCipher
	oldPassword string
	newPassword string
}

func runRewrap(cmd *cobra.Command, _ []string) error {
	if err := checkMode("from", fromMode); err != nil {
		return err
	}
	if err := checkMode("to", toMode); err != nil {
		return err
	}

	input := envelope
	if input == "" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read envelope: %w", err)
		}
		input = string(raw)
	}

	k, err := collectKeys(fromMode, toMode)
	if err != nil {
		return err
	}

	out, err := rewrap(strings.TrimSpace(input), fromMode, toMode, k)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func checkMode(flag, mode string) error {
	if mode != modeSystem && mode != modePassword {
		return fmt.Errorf("--%s must be %q or %q, got %q", flag, modeSystem, modePassword, mode)
	}
	return nil
}

func collectKeys(from, to string) (keys, error) {
	var k keys

	if from == modeSystem || to == modeSystem {
		cfg, err := config.Load()
		if err != nil {
			return k, err
		}
		if k.system, err = crypto.NewSystemCipher(cfg.EncryptionKey); err != nil {
			return k, err
		}
	}

	if from == modePassword {
		pw, err := config.PromptForPassword("Current password")
		if err != nil {
			return k, err
		}
		k.oldPassword = string(pw)
		clear(pw)
	}

	if to == modePassword {
		pw, err := config.PromptForPassword("New password")
		if err != nil {
			return k, err
		}
		confirm, err := config.PromptForPassword("Repeat new password")
		if err != nil {
			clear(pw)
			return k, err
		}
		match := string(pw) == string(confirm)
		k.newPassword = string(pw)
		clear(pw)
		clear(confirm)
		if !match {
			return k, fmt.Errorf("new passwords do not match")
		}
	}

	return k, nil
}

// rewrap opens env in mode from and seals the plaintext in mode to. Every
// output gets a fresh nonce, and a fresh salt in password mode.
func rewrap(env, from, to string, k keys) (string, error) {
	if to == modePassword {
		if err := crypto.ValidatePassword(k.newPassword); err != nil {
			return "", err
		}
	}

	var plaintext []byte
	var err error
	switch from {
	case modeSystem:
		plaintext, err = k.system.Decrypt(env)
	case modePassword:
		plaintext, err = crypto.DecryptWithPassword(env, k.oldPassword)
	default:
		return "", fmt.Errorf("unknown mode %q", from)
	}
	if err != nil {
		return "", err
	}
	defer clear(plaintext)

	switch to {
	case modeSystem:
		return k.system.Encrypt(plaintext)
	case modePassword:
		return crypto.EncryptWithPassword(plaintext, k.newPassword)
	default:
		return "", fmt.Errorf("unknown mode %q", to)
	}
}
