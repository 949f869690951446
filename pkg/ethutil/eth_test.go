package ethutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsZeroAddress(t *testing.T) {
	require.True(t, IsZeroAddress("0x0000000000000000000000000000000000000000"))
	require.True(t, IsZeroAddress("0X0000000000000000000000000000000000000000"))
	require.False(t, IsZeroAddress(""))
	require.False(t, IsZeroAddress("0x0"))
	require.False(t, IsZeroAddress("0x0000000000000000000000000000000000000001"))
	require.False(t, IsZeroAddress("0x00000000000000000000000000000000000000000"))
}

func TestSameAddress(t *testing.T) {
	require.True(t, SameAddress(
		"0xAbCd000000000000000000000000000000000001",
		"0xabcd000000000000000000000000000000000001",
	))
	require.False(t, SameAddress(
		"0xAbCd000000000000000000000000000000000001",
		"0xAbCd000000000000000000000000000000000002",
	))
	require.False(t, SameAddress("", ""))
}

func TestShortenAddress(t *testing.T) {
	require.Equal(t, "0x1234...cdef", ShortenAddress("0x1234567890abcdef1234567890abcdef1234cdef"))
	require.Equal(t, "0x1234", ShortenAddress("0x1234"))
}

func TestGeneratePublicKey(t *testing.T) {
	addr1, err := GeneratePublicKey([]byte("secret"), []byte("user1"))
	require.NoError(t, err)

	// The same inputs must map to the same address on every single
	// derivation, not just on average.
	for i := 0; i < 32; i++ {
		addr, err := GeneratePublicKey([]byte("secret"), []byte("user1"))
		require.NoError(t, err)
		require.Equal(t, addr1, addr)
	}

	addr3, err := GeneratePublicKey([]byte("secret"), []byte("user2"))
	require.NoError(t, err)
	require.NotEqual(t, addr1, addr3)
}

func TestGeneratePrivateKey_Deterministic(t *testing.T) {
	key1, err := GeneratePrivateKey([]byte("secret"), []byte("alice"))
	require.NoError(t, err)

	key2, err := GeneratePrivateKey([]byte("secret"), []byte("alice"))
	require.NoError(t, err)
	require.Equal(t, key1.D, key2.D)
}
