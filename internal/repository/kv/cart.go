// Package kv implements the storefront repositories as JSON blobs in a
// key-value store.
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

const cartKeyPrefix = "cart:"

// CartRepository implements repository.CartRepository over a kvstore.Store.
type CartRepository struct {
	store kvstore.Store
}

// NewCartRepository creates a new key-value backed cart repository.
func NewCartRepository(store kvstore.Store) *CartRepository {
	return &CartRepository{store: store}
}

// Get retrieves a cart by user ID.
func (r *CartRepository) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	data, err := r.store.Get(ctx, cartKeyPrefix+userID)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, apperrors.NotFound("cart", userID)
		}
		return nil, fmt.Errorf("get cart blob: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}

	return &cart, nil
}

// Save persists a cart.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	if err := r.store.Set(ctx, cartKeyPrefix+cart.UserID, data); err != nil {
		return fmt.Errorf("set cart blob: %w", err)
	}

	return nil
}

// Delete removes a cart by user ID.
func (r *CartRepository) Delete(ctx context.Context, userID string) error {
	if err := r.store.Delete(ctx, cartKeyPrefix+userID); err != nil {
		return fmt.Errorf("delete cart blob: %w", err)
	}
	return nil
}
