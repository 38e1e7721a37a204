package crypto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mythos223/Blog-Website-Project/internal/crypto"
)

// 64 hex chars = 32 bytes, the fixed AES-256 key size.
const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newTestCipher(t *testing.T) *crypto.Cipher {
	t.Helper()
	c, err := crypto.NewCipher(testKeyHex)
	require.NoError(t, err)
	return c
}

func TestHashPassword_VerifiesExactPasswordOnly(t *testing.T) {
	hash, err := crypto.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, crypto.CheckPassword("correct horse battery staple", hash))
	assert.False(t, crypto.CheckPassword("correct horse battery stapl", hash))
	assert.False(t, crypto.CheckPassword("", hash))
}

func TestNewCipher_RejectsBadKeys(t *testing.T) {
	_, err := crypto.NewCipher("not-hex-at-all")
	assert.Error(t, err, "non-hex key should be rejected")

	_, err = crypto.NewCipher("abcdef") // valid hex, wrong length
	assert.Error(t, err, "short key should be rejected")
}

func TestCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t)

	plaintexts := []string{
		"alice@example.com",
		"",
		"short",
		strings.Repeat("long input ", 50),
		"ünïcödé@exämple.com",
	}
	for _, plaintext := range plaintexts {
		token, err := c.Encrypt(plaintext)
		require.NoError(t, err)
		assert.Contains(t, token, ":", "token should be ivHex:cipherHex")

		decrypted, ok := c.Decrypt(token)
		require.True(t, ok, "round trip should succeed for %q", plaintext)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestCipher_FreshIVPerCall(t *testing.T) {
	c := newTestCipher(t)

	first, err := c.Encrypt("alice@example.com")
	require.NoError(t, err)
	second, err := c.Encrypt("alice@example.com")
	require.NoError(t, err)

	// Equal plaintexts must not produce equal tokens.
	assert.NotEqual(t, first, second)

	decryptedFirst, ok := c.Decrypt(first)
	require.True(t, ok)
	decryptedSecond, ok := c.Decrypt(second)
	require.True(t, ok)
	assert.Equal(t, decryptedFirst, decryptedSecond)
}

func TestCipher_DecryptMalformedReturnsNoMatch(t *testing.T) {
	c := newTestCipher(t)

	malformed := []string{
		"",
		"no separator here",
		"a:b:c",
		"nothex:00112233445566778899aabbccddeeff",
		"00112233445566778899aabbccddeeff:nothex",
		"0011:00112233445566778899aabbccddeeff",     // IV too short
		"00112233445566778899aabbccddeeff:",         // empty ciphertext
		"00112233445566778899aabbccddeeff:00112233", // not a block multiple
	}
	for _, token := range malformed {
		_, ok := c.Decrypt(token)
		assert.False(t, ok, "malformed token %q should not decrypt", token)
	}
}
