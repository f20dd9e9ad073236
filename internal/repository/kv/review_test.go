package kv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/oakmart/storefront/pkg/errors"
	"github.com/oakmart/storefront/pkg/kvstore"

	"github.com/oakmart/storefront/internal/domain"
)

func TestReviewRepository_LoadEmpty(t *testing.T) {
	repo := NewReviewRepository(kvstore.NewMemoryStore())

	got, err := repo.Load(context.Background())
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReviewRepository_SaveLoad(t *testing.T) {
	repo := NewReviewRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	reviews := []domain.Review{
		{
			ID:        "r1",
			ProductID: "p101",
			Rating:    5,
			Comment:   "Great sound.",
			CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		},
		{
			ID:        "r2",
			ProductID: "p103",
			Rating:    3,
			Comment:   "Runs small.",
			CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		},
	}

	require.NoError(t, repo.Save(ctx, reviews))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, reviews, got)
}

func TestWishlistRepository_SaveGetDelete(t *testing.T) {
	repo := NewWishlistRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	wishlist := &domain.Wishlist{UserID: "user-1", ProductIDs: []string{"p105", "p101"}}
	require.NoError(t, repo.Save(ctx, wishlist))

	got, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p105", "p101"}, got.ProductIDs)

	require.NoError(t, repo.Delete(ctx, "user-1"))
	_, err = repo.Get(ctx, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProfileRepository_SaveGet(t *testing.T) {
	repo := NewProfileRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	user := &domain.User{
		ID:        "u1",
		Email:     "john.doe@example.com",
		FirstName: "John",
		LastName:  "Doe",
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, repo.Save(ctx, user))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
