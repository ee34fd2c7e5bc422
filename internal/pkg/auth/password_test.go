package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("S3cret!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "S3cret!pass", hash)

	assert.True(t, CheckPassword(hash, "S3cret!pass"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}

func TestCheckPasswordLegacyHash(t *testing.T) {
	// Rows seeded by the legacy portal store SHA-256 hex digests.
	legacy := SHA256Hex("student123")

	assert.True(t, CheckPassword(legacy, "student123"))
	assert.False(t, CheckPassword(legacy, "student124"))
}

func TestIsLegacyHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
		want bool
	}{
		{"sha256 hex digest", SHA256Hex("anything"), true},
		{"bcrypt hash", "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW", false},
		{"too short", "abcdef", false},
		{"right length but not hex", "zz" + SHA256Hex("x")[2:], false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLegacyHash(tt.hash))
		})
	}
}
