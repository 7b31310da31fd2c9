package memstore

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeed(t *testing.T) {
	s := New(Options{})
	require.NoError(t, Seed(s, zerolog.Nop()))

	demo, ok := s.UserByEmail("demo@example.com")
	require.True(t, ok)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(demo.PasswordHash), []byte("demo123")))

	_, ok = s.UserByEmail("alice@example.com")
	assert.True(t, ok)

	assert.Len(t, s.ListAds(0), 3)

	// Seeding twice trips the duplicate-email check.
	assert.Error(t, Seed(s, zerolog.Nop()))
}
