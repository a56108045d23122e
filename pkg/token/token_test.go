package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan4i4ek31/Final-Project-2.0/pkg/token"
)

func TestRoundTrip(t *testing.T) {
	m := token.NewManager("secret", time.Hour)

	signed, err := m.Generate("u-1", "anna@example.com", "Анна")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := m.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "anna@example.com", claims.Email)
	assert.Equal(t, "Анна", claims.Name)
}

func TestValidate_WrongSecret(t *testing.T) {
	signed, err := token.NewManager("secret-a", time.Hour).Generate("u-1", "a@b.c", "A")
	require.NoError(t, err)

	_, err = token.NewManager("secret-b", time.Hour).Validate(signed)
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	signed, err := token.NewManager("secret", -time.Minute).Generate("u-1", "a@b.c", "A")
	require.NoError(t, err)

	_, err = token.NewManager("secret", time.Hour).Validate(signed)
	assert.Error(t, err)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := token.NewManager("secret", time.Hour).Validate("not.a.token")
	assert.Error(t, err)
}
