package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanModify(t *testing.T) {
	require.True(t, CanModify(1, 1))
	require.False(t, CanModify(1, 2))
	require.False(t, CanModify(0, 1))
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseToken(token)
	require.NoError(t, err)
	require.EqualValues(t, 42, userID)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	require.Error(t, err)
}

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode(6)
	require.NoError(t, err)
	require.Len(t, code, 6)
	for _, r := range code {
		require.True(t, r >= '0' && r <= '9')
	}
}
