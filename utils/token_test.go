package authUtils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicpulse/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	account := models.Account{
		ID:        "authority-1",
		Name:      "Ward Officer",
		Email:     "officer@civicpulse.example",
		Role:      models.RoleAuthority,
		CreatedAt: time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC),
	}
	token, err := GenerateToken(account, "secret", time.Hour)
	require.NoError(t, err)

	got, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	_, err := GenerateToken(models.Account{ID: "x", Role: models.RoleCitizen}, "", time.Hour)
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestParseTokenRejects(t *testing.T) {
	valid, err := GenerateToken(models.Account{ID: "x", Role: models.RoleCitizen}, "secret", time.Hour)
	require.NoError(t, err)
	expired, err := GenerateToken(models.Account{ID: "x", Role: models.RoleCitizen}, "secret", -time.Hour)
	require.NoError(t, err)
	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "x",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", valid, "other"},
		{"expired", expired, "secret"},
		{"missing role", noRole, "secret"},
		{"garbage", "not-a-token", "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
