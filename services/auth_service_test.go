package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

func TestRegisterAndLoginInMemory(t *testing.T) {
	svc := NewAuthService(nil)

	user, err := svc.Register(models.RegisterRequest{
		Name:     "Jonas Kazlauskas",
		Email:    "Jonas@Example.com",
		Password: "labai-slapta",
		Language: "lt",
	})
	require.NoError(t, err)
	assert.Equal(t, "jonas@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, "lt", user.LanguagePreference)
	assert.NotEqual(t, "labai-slapta", user.PasswordHash)

	logged, err := svc.Login(models.LoginRequest{Email: "jonas@example.com", Password: "labai-slapta"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(nil)

	req := models.RegisterRequest{Name: "A", Email: "a@b.co", Password: "password1"}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(nil)

	_, err := svc.Register(models.RegisterRequest{Name: "A", Email: "a@b.co", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Login(models.LoginRequest{Email: "a@b.co", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(models.LoginRequest{Email: "nobody@b.co", Password: "password1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureGoogleUserCreatesAndLinks(t *testing.T) {
	svc := NewAuthService(nil)

	info := &models.GoogleUserInfo{
		Sub:    "google-sub-1",
		Email:  "ruta@example.com",
		Name:   "Rūta",
		Locale: "lt-LT",
	}

	user, err := svc.EnsureGoogleUser(info)
	require.NoError(t, err)
	assert.Equal(t, "google", user.Provider)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, "lt", user.LanguagePreference)
	require.NotNil(t, user.GoogleID)
	assert.Equal(t, "google-sub-1", *user.GoogleID)

	// Second sign-in resolves to the same account.
	again, err := svc.EnsureGoogleUser(info)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestEnsureGoogleUserLinksPasswordAccount(t *testing.T) {
	svc := NewAuthService(nil)

	registered, err := svc.Register(models.RegisterRequest{
		Name:     "Jonas",
		Email:    "jonas@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	linked, err := svc.EnsureGoogleUser(&models.GoogleUserInfo{
		Sub:   "google-sub-2",
		Email: "jonas@example.com",
		Name:  "Jonas K",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, linked.ID)
	require.NotNil(t, linked.GoogleID)
	assert.Equal(t, "google-sub-2", *linked.GoogleID)
}

func TestGoogleOnlyAccountRejectsPasswordLogin(t *testing.T) {
	svc := NewAuthService(nil)

	_, err := svc.EnsureGoogleUser(&models.GoogleUserInfo{
		Sub:   "google-sub-3",
		Email: "g@example.com",
		Name:  "G",
	})
	require.NoError(t, err)

	_, err = svc.Login(models.LoginRequest{Email: "g@example.com", Password: "anything1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateRoleInMemory(t *testing.T) {
	svc := NewAuthService(nil)

	user, err := svc.Register(models.RegisterRequest{Name: "A", Email: "a@b.co", Password: "password1"})
	require.NoError(t, err)

	updated, err := svc.UpdateRole(user.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	fetched, err := svc.GetUser(user.ID)
	require.NoError(t, err)
	assert.True(t, fetched.IsAdmin())
}
