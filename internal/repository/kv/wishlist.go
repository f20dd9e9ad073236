package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	apperrors "github.com/oakmart/storefront/pkg/errors"
	"github.com/oakmart/storefront/pkg/kvstore"

	"github.com/oakmart/storefront/internal/domain"
)

const wishlistKeyPrefix = "wishlist:"

// WishlistRepository implements repository.WishlistRepository over a kvstore.Store.
type WishlistRepository struct {
	store kvstore.Store
}

// NewWishlistRepository creates a new key-value backed wishlist repository.
func NewWishlistRepository(store kvstore.Store) *WishlistRepository {
	return &WishlistRepository{store: store}
}

// Get retrieves a wishlist by user ID.
func (r *WishlistRepository) Get(ctx context.Context, userID string) (*domain.Wishlist, error) {
	data, err := r.store.Get(ctx, wishlistKeyPrefix+userID)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, apperrors.NotFound("wishlist", userID)
		}
		return nil, fmt.Errorf("get wishlist blob: %w", err)
	}

	var wishlist domain.Wishlist
	if err := json.Unmarshal(data, &wishlist); err != nil {
		return nil, fmt.Errorf("unmarshal wishlist: %w", err)
	}

	return &wishlist, nil
}

// Save persists a wishlist.
func (r *WishlistRepository) Save(ctx context.Context, wishlist *domain.Wishlist) error {
	data, err := json.Marshal(wishlist)
	if err != nil {
		return fmt.Errorf("marshal wishlist: %w", err)
	}

	if err := r.store.Set(ctx, wishlistKeyPrefix+wishlist.UserID, data); err != nil {
		return fmt.Errorf("set wishlist blob: %w", err)
	}

	return nil
}

// Delete removes a wishlist by user ID.
func (r *WishlistRepository) Delete(ctx context.Context, userID string) error {
	if err := r.store.Delete(ctx, wishlistKeyPrefix+userID); err != nil {
		return fmt.Errorf("delete wishlist blob: %w", err)
	}
	return nil
}
