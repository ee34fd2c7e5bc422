package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor used for newly created password hashes.
const BcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// SHA256Hex returns the lowercase hex SHA-256 digest of s. Databases seeded
// by the legacy portal store password hashes in this form.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// IsLegacyHash reports whether the stored hash looks like a legacy SHA-256
// hex digest rather than a bcrypt hash.
func IsLegacyHash(storedHash string) bool {
	if len(storedHash) != 64 {
		return false
	}
	for _, c := range storedHash {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}

// CheckPassword verifies a plaintext password against a stored hash.
// Bcrypt hashes are checked natively; 64-char hex digests fall back to a
// constant-time SHA-256 comparison for rows created by the legacy portal.
func CheckPassword(storedHash, password string) bool {
	if IsLegacyHash(strings.ToLower(storedHash)) {
		digest := SHA256Hex(password)
		return subtle.ConstantTimeCompare([]byte(strings.ToLower(storedHash)), []byte(digest)) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
