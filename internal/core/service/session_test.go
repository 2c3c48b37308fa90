package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmart/storefront/internal/core/service"
)

var demo = service.Credentials{
	Name:     "Demo User",
	Email:    "user@gmail.com",
	Password: "Namasthe",
}

func TestSessionLogin(t *testing.T) {
	t.Run("DemoPairSucceeds", func(t *testing.T) {
		s := service.NewSession(demo)

		require.True(t, s.Login("user@gmail.com", "Namasthe"))
		require.True(t, s.IsAuthenticated())

		user, ok := s.User()
		require.True(t, ok)
		assert.Equal(t, "Demo User", user.Name)
		assert.Equal(t, "user@gmail.com", user.Email)
	})

	t.Run("WrongCredentialsFail", func(t *testing.T) {
		s := service.NewSession(demo)

		assert.False(t, s.Login("wrong@x.com", "bad"))
		assert.False(t, s.Login("user@gmail.com", "wrong"))
		assert.False(t, s.Login("", ""))
		assert.False(t, s.IsAuthenticated())

		_, ok := s.User()
		assert.False(t, ok)
	})

	t.Run("FailedLoginKeepsInstalledIdentity", func(t *testing.T) {
		s := service.NewSession(demo)
		require.True(t, s.Login("user@gmail.com", "Namasthe"))

		assert.False(t, s.Login("user@gmail.com", "wrong"))
		assert.True(t, s.IsAuthenticated())
	})
}

func TestSessionLogout(t *testing.T) {
	s := service.NewSession(demo)
	require.True(t, s.Login("user@gmail.com", "Namasthe"))

	s.Logout()
	assert.False(t, s.IsAuthenticated())
	_, ok := s.User()
	assert.False(t, ok)

	// logging out an anonymous session is fine
	s.Logout()
	assert.False(t, s.IsAuthenticated())
}
