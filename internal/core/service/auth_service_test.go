package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulletinhq/bulletin-api/internal/core/domain"
	"github.com/bulletinhq/bulletin-api/internal/infrastructure/memstore"
)

func newAuthFixture(t *testing.T) (*AuthService, *memstore.Store) {
	t.Helper()
	store := memstore.New(memstore.Options{})
	return NewAuthService(store, store, zerolog.Nop()), store
}

func TestRegister(t *testing.T) {
	auth, store := newAuthFixture(t)

	user, err := auth.Register("Bob", "bob@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	// The stored verifier is a hash, never the raw password.
	stored, ok := store.UserByEmail("bob@x.com")
	require.True(t, ok)
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)

	_, err = auth.Register("Other Bob", "bob@x.com", "secret2")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	_, err = auth.Register("", "x@x.com", "pw")
	assert.ErrorIs(t, err, domain.ErrMissingFields)
	_, err = auth.Register("X", "x@x.com", "")
	assert.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestLogin_OpensSession(t *testing.T) {
	auth, _ := newAuthFixture(t)
	_, err := auth.Register("Bob", "bob@x.com", "secret")
	require.NoError(t, err)

	token, user, err := auth.Login("bob@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "bob@x.com", user.Email)
	assert.NotEmpty(t, token)

	id, ok := auth.Authenticate(token)
	require.True(t, ok)
	assert.Equal(t, user.ID, id)

	current, ok := auth.CurrentUser(token)
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLogin_EnumerationResistance(t *testing.T) {
	auth, _ := newAuthFixture(t)
	_, err := auth.Register("Bob", "bob@x.com", "secret")
	require.NoError(t, err)

	_, _, errWrongPassword := auth.Login("bob@x.com", "not-it")
	_, _, errUnknownEmail := auth.Login("nobody@x.com", "secret")

	assert.ErrorIs(t, errWrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownEmail, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestLogin_MissingCredentials(t *testing.T) {
	auth, _ := newAuthFixture(t)
	_, _, err := auth.Login("", "pw")
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
	_, _, err = auth.Login("a@x.com", "")
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestLogout(t *testing.T) {
	auth, _ := newAuthFixture(t)
	_, err := auth.Register("Bob", "bob@x.com", "secret")
	require.NoError(t, err)
	token, _, err := auth.Login("bob@x.com", "secret")
	require.NoError(t, err)

	auth.Logout(token)
	_, ok := auth.Authenticate(token)
	assert.False(t, ok)

	// Best-effort: unknown and empty tokens do not error.
	auth.Logout(token)
	auth.Logout("")

	_, ok = auth.Authenticate("")
	assert.False(t, ok)
}
