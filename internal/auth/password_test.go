package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	encoded, err := HashPassword("pw123456")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("pw123456", encoded))
	assert.False(t, VerifyPassword("pw123457", encoded))
	assert.False(t, VerifyPassword("", encoded))
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	first, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	second, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	// Fresh salt every call: two hashes of the same password never match,
	// yet both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("correct horse battery staple", first))
	assert.True(t, VerifyPassword("correct horse battery staple", second))
}

func TestHashPassword_Encoding(t *testing.T) {
	encoded, err := HashPassword("secret")
	require.NoError(t, err)

	digestHex, saltHex, ok := strings.Cut(encoded, ".")
	require.True(t, ok)
	assert.Len(t, digestHex, keyLen*2)
	assert.Len(t, saltHex, saltLen*2)
}

func TestVerifyPassword_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"no separator", "deadbeef"},
		{"non-hex digest", "zz.00112233445566778899aabbccddeeff"},
		{"non-hex salt", strings.Repeat("ab", 32) + ".zz"},
		{"short digest", "abcd." + strings.Repeat("ab", 16)},
		{"short salt", strings.Repeat("ab", 32) + ".abcd"},
		{"extra separator", strings.Repeat("ab", 32) + "." + strings.Repeat("ab", 16) + ".tail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Malformed encodings verify false, never panic or error.
			assert.False(t, VerifyPassword("anything", tt.encoded))
		})
	}
}
