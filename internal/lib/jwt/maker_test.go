package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	maker := NewJWTMaker("test-secret", time.Hour)

	token, err := maker.GenerateToken("user@example.com", "member")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "member", claims.Role)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseToken_Invalid(t *testing.T) {
	maker := NewJWTMaker("test-secret", time.Hour)

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name:  "мусор вместо токена",
			token: func() string { return "not-a-token" },
		},
		{
			name: "чужой секретный ключ",
			token: func() string {
				other := NewJWTMaker("other-secret", time.Hour)
				token, err := other.GenerateToken("user@example.com", "member")
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "истёкший токен",
			token: func() string {
				expired := NewJWTMaker("test-secret", -time.Minute)
				token, err := expired.GenerateToken("user@example.com", "member")
				require.NoError(t, err)
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := maker.ParseToken(tt.token())
			assert.Error(t, err)
		})
	}
}
