package irapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	cfg := JWTConfig{SecretKey: "test-secret", Expiration: time.Hour, Issuer: "test-issuer"}

	token, err := GenerateToken("client-1", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestGenerateValidateToken_RoundTrip(t *testing.T) {
	cfg := JWTConfig{SecretKey: "test-secret", Expiration: time.Hour, Issuer: "edgeflow"}

	token, err := GenerateToken("client-42", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "client-42", claims.ClientID)
	assert.Equal(t, "edgeflow", claims.Issuer)
}

func TestValidateToken_WrongKey(t *testing.T) {
	cfg1 := JWTConfig{SecretKey: "key-1"}
	cfg2 := JWTConfig{SecretKey: "key-2"}

	token, err := GenerateToken("client-1", cfg1)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg2)
	assert.Error(t, err)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	cfg := JWTConfig{SecretKey: "test-secret", Expiration: time.Nanosecond}

	token, err := GenerateToken("client-1", cfg)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = ValidateToken(token, cfg)
	assert.Error(t, err)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	cfg := JWTConfig{SecretKey: "test-secret"}

	tests := []string{"", "not.a.valid.token", "random-string"}
	for _, tok := range tests {
		_, err := ValidateToken(tok, cfg)
		assert.Error(t, err)
	}
}
