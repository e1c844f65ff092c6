package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintAndParse(t *testing.T) {
	m := NewTokenMinter("secret")
	now := time.Now().Truncate(time.Second)

	token, err := m.Mint("session-123", now, now.Add(8*time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "session-123", claims.SessionUUID)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, now.Add(8*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestParseRejectsWrongSecret(t *testing.T) {
	now := time.Now()
	token, err := NewTokenMinter("secret-a").Mint("session-123", now, now.Add(time.Hour))
	require.NoError(t, err)

	_, err = NewTokenMinter("secret-b").Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewTokenMinter("secret").Parse("not-a-jwt")
	assert.Error(t, err)
}
