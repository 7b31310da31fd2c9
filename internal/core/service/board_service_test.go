package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulletinhq/bulletin-api/internal/core/domain"
	"github.com/bulletinhq/bulletin-api/internal/infrastructure/memstore"
)

func newBoardFixture(t *testing.T) (*BoardService, int) {
	t.Helper()
	store := memstore.New(memstore.Options{})
	owner, err := store.CreateUser("Owner", "o@x.com", "h")
	require.NoError(t, err)
	return NewBoardService(store, zerolog.Nop()), owner.ID
}

func TestCreateAd_Validation(t *testing.T) {
	board, owner := newBoardFixture(t)

	_, err := board.CreateAd(owner, "", "desc", "")
	assert.ErrorIs(t, err, domain.ErrMissingAdFields)
	_, err = board.CreateAd(owner, "title", "", "")
	assert.ErrorIs(t, err, domain.ErrMissingAdFields)

	for _, raw := range []string{"abc", "12,50", "-5", "NaN", "Inf"} {
		_, err = board.CreateAd(owner, "t", "d", raw)
		assert.ErrorIs(t, err, domain.ErrInvalidPrice, "price %q", raw)
	}
}

func TestCreateAd_PriceHandling(t *testing.T) {
	board, owner := newBoardFixture(t)

	ad, err := board.CreateAd(owner, "free", "d", "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, ad.Price, "omitted price defaults to zero")

	ad, err = board.CreateAd(owner, "bike", "d", "150.5")
	require.NoError(t, err)
	assert.Equal(t, 150.5, ad.Price)
	assert.Greater(t, ad.ID, 1)
}

func TestBoardService_PassThroughOperations(t *testing.T) {
	board, owner := newBoardFixture(t)

	ad, err := board.CreateAd(owner, "t", "d", "10")
	require.NoError(t, err)

	assert.Len(t, board.ListAds(0), 1)
	assert.ErrorIs(t, board.Respond(owner, ad.ID), domain.ErrOwnResponse)
	assert.ErrorIs(t, board.DeleteAd(owner+1, ad.ID), domain.ErrDeleteForbidden)

	_, err = board.Responders(owner, ad.ID)
	assert.NoError(t, err)

	require.NoError(t, board.DeleteAd(owner, ad.ID))
	assert.Empty(t, board.ListAds(0))
	assert.Empty(t, board.MyResponses(owner))
}
