package solana

import (
	"crypto/ed25519"
	"encoding/hex"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey_MatchesDerivedAddress(t *testing.T) {
	c := New("")

	pk, addr, err := c.GenerateKey()
	require.NoError(t, err)
	assert.Len(t, pk, 2*seedSize)

	derived, err := c.AddressFromPrivateKey(pk)
	require.NoError(t, err)
	assert.Equal(t, addr, derived)

	_, err = solana.PublicKeyFromBase58(addr)
	assert.NoError(t, err)
}

func TestAddressFromPrivateKey_AcceptsFullKeypair(t *testing.T) {
	c := New("")
	seed := make([]byte, seedSize)
	for i := range seed {
		seed[i] = byte(i)
	}
	full := ed25519.NewKeyFromSeed(seed)

	fromSeed, err := c.AddressFromPrivateKey(hex.EncodeToString(seed))
	require.NoError(t, err)
	fromFull, err := c.AddressFromPrivateKey(hex.EncodeToString(full))
	require.NoError(t, err)

	assert.Equal(t, fromSeed, fromFull)
	assert.Equal(t, solana.PrivateKey(full).PublicKey().String(), fromSeed)
}

func TestAddressFromPrivateKey_Invalid(t *testing.T) {
	c := New("")

	_, err := c.AddressFromPrivateKey("zz")
	assert.Error(t, err)

	_, err = c.AddressFromPrivateKey("abcd")
	assert.Error(t, err)
}
