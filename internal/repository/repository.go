package repository

import (
	"context"

	"github.com/oakmart/storefront/internal/domain"
)

// CartRepository defines the interface for cart persistence operations.
type CartRepository interface {
	// Get retrieves a cart by its user ID.
	Get(ctx context.Context, userID string) (*domain.Cart, error)

	// Save persists a cart, overwriting any existing cart for the user.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes a cart by the user ID.
	Delete(ctx context.Context, userID string) error
}

// WishlistRepository defines the interface for wishlist persistence operations.
type WishlistRepository interface {
	// Get retrieves a wishlist by its user ID.
	Get(ctx context.Context, userID string) (*domain.Wishlist, error)

	// Save persists a wishlist, overwriting any existing wishlist for the user.
	Save(ctx context.Context, wishlist *domain.Wishlist) error

	// Delete removes a wishlist by the user ID.
	Delete(ctx context.Context, userID string) error
}

// ReviewRepository persists the shared append-only review collection as a
// single snapshot.
type ReviewRepository interface {
	// Load retrieves the full review collection.
	Load(ctx context.Context) ([]domain.Review, error)

	// Save persists the full review collection.
	Save(ctx context.Context, reviews []domain.Review) error
}

// ProfileRepository persists user profiles.
type ProfileRepository interface {
	// Get retrieves a profile by user ID.
	Get(ctx context.Context, userID string) (*domain.User, error)

	// Save persists a profile.
	Save(ctx context.Context, user *domain.User) error
}
