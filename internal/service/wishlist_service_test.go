package service

import (
	"context"
	"testing"

	"lyra-storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWishlistService(t *testing.T) WishlistService {
	t.Helper()

	db := newTestDB(t)
	seedProduct(t, db, "p1", 2500)
	seedProduct(t, db, "p2", 12000)

	return NewWishlistService(
		repository.NewWishlistRepository(db),
		repository.NewProductRepository(db),
	)
}

func TestWishlist_AddListRemove(t *testing.T) {
	svc := newWishlistService(t)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "alice", "p1"))
	require.NoError(t, svc.Add(ctx, "alice", "p2"))

	entries, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.NotNil(t, entries[0].Product)

	require.NoError(t, svc.Remove(ctx, "alice", "p1"))

	entries, err = svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "p2", entries[0].ProductID)
}

func TestWishlist_DuplicateAdd(t *testing.T) {
	svc := newWishlistService(t)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "alice", "p1"))

	err := svc.Add(ctx, "alice", "p1")
	assert.ErrorIs(t, err, ErrAlreadyInWishlist)

	// Same product is fine for a different user.
	assert.NoError(t, svc.Add(ctx, "bob", "p1"))
}

func TestWishlist_AddUnknownProduct(t *testing.T) {
	svc := newWishlistService(t)
	ctx := context.Background()

	err := svc.Add(ctx, "alice", "ghost")
	assert.ErrorIs(t, err, ErrProductNotFound)

	entries, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing gets written for an unknown product")
}

func TestWishlist_RemoveAbsent(t *testing.T) {
	svc := newWishlistService(t)

	err := svc.Remove(context.Background(), "alice", "p1")

	assert.ErrorIs(t, err, ErrWishlistEntryGone)
}

func TestWishlist_ListEmpty(t *testing.T) {
	svc := newWishlistService(t)

	entries, err := svc.List(context.Background(), "alice")

	require.NoError(t, err)
	assert.Empty(t, entries)
}
