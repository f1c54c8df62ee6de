package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("ops@example.com", "s3cret", time.Hour, "ledger-engine")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "s3cret", "ledger-engine")
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.Equal(t, "ledger-engine", claims.Issuer)
}

func TestJWTRejects(t *testing.T) {
	good, err := GenerateJWT("ops", "s3cret", time.Hour, "ledger-engine")
	require.NoError(t, err)
	expired, err := GenerateJWT("ops", "s3cret", -time.Minute, "ledger-engine")
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
		issuer string
		want   error
	}{
		{"wrong secret", good, "other", "ledger-engine", jwt.ErrTokenSignatureInvalid},
		{"wrong issuer", good, "s3cret", "someone-else", jwt.ErrTokenInvalidIssuer},
		{"expired", expired, "s3cret", "", jwt.ErrTokenExpired},
		{"garbage", "not.a.token", "s3cret", "", jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAndValidateJWT(tt.token, tt.secret, tt.issuer)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestGenerateJWTNeedsSecret(t *testing.T) {
	_, err := GenerateJWT("ops", "", time.Hour, "")
	assert.Error(t, err)
}
