package services

import (
	"testing"
	"time"

	"warehouse-app/database"
	"warehouse-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndParseToken(t *testing.T) {
	auth := NewAuthService(NewUserService(database.NewMemoryStore()), "secret", time.Hour)

	token, user, err := auth.Login("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, &Claims{UserID: "1", Username: "admin", Role: models.RoleAdmin}, claims)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	auth := NewAuthService(NewUserService(database.NewMemoryStore()), "secret", time.Hour)

	_, _, err := auth.Login("admin", "Admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsForeignOrExpired(t *testing.T) {
	users := NewUserService(database.NewMemoryStore())
	other := NewAuthService(users, "other-secret", time.Hour)
	token, err := other.IssueToken(models.User{ID: "1", Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	auth := NewAuthService(users, "secret", time.Hour)
	_, err = auth.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewAuthService(users, "secret", -time.Minute)
	token, err = expired.IssueToken(models.User{ID: "1"})
	require.NoError(t, err)
	_, err = auth.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = auth.ParseToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
