package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters. 32 KiB memory cost keeps interactive logins under
// ~100ms while staying memory-hard.
const (
	scryptN = 32768
	scryptR = 8
	scryptP = 1
	keyLen  = 32
	saltLen = 16
)

// HashPassword derives a scrypt digest over plaintext with a fresh
// random salt and returns the self-describing encoding
// "hex(digest).hex(salt)". It fails only if the entropy source does,
// which is fatal and non-retryable.
func HashPassword(plaintext string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(plaintext), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}

	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// VerifyPassword recomputes the digest over plaintext with the salt
// embedded in encoded and compares digests in constant time. Malformed
// encodings verify false rather than erroring, so a corrupt record is
// indistinguishable from a wrong password.
func VerifyPassword(plaintext, encoded string) bool {
	digestHex, saltHex, ok := strings.Cut(encoded, ".")
	if !ok {
		return false
	}

	stored, err := hex.DecodeString(digestHex)
	if err != nil || len(stored) != keyLen {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) != saltLen {
		return false
	}

	key, err := scrypt.Key([]byte(plaintext), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(stored, key) == 1
}
