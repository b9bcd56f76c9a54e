package ethereum

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressFromPrivateKey_KnownVector(t *testing.T) {
	c := New("")

	addr, err := c.AddressFromPrivateKey("4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318")
	require.NoError(t, err)
	assert.Equal(t, "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23", addr)

	// 0x prefix is accepted.
	addr, err = c.AddressFromPrivateKey("0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318")
	require.NoError(t, err)
	assert.Equal(t, "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23", addr)
}

func TestGenerateKey_MatchesDerivedAddress(t *testing.T) {
	c := New("")

	pk, addr, err := c.GenerateKey()
	require.NoError(t, err)
	assert.Len(t, pk, 64)

	derived, err := c.AddressFromPrivateKey(pk)
	require.NoError(t, err)
	assert.Equal(t, addr, derived)
}

func TestAddressFromPrivateKey_Invalid(t *testing.T) {
	c := New("")

	_, err := c.AddressFromPrivateKey("not-hex")
	assert.Error(t, err)

	_, err = c.AddressFromPrivateKey("abcd")
	assert.Error(t, err)
}

func TestBalance_InvalidAddress(t *testing.T) {
	_, err := New("http://127.0.0.1:1").Balance(context.Background(), "nope")
	assert.Error(t, err)
}
