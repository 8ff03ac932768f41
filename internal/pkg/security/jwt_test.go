package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, []string{"ADMIN"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, []string{"ADMIN"}, claims.Roles)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken(1, nil)
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	token, err := GenerateToken(7, nil)
	require.NoError(t, err)

	signature, err := ExtractSignature(token)
	require.NoError(t, err)
	assert.NotEmpty(t, signature)

	_, err = ExtractSignature("not-a-jwt")
	assert.Error(t, err)
}
