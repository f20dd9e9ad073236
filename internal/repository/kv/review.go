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

const reviewsKey = "reviews"

// ReviewRepository implements repository.ReviewRepository over a kvstore.Store.
// The whole review collection lives under a single key.
type ReviewRepository struct {
	store kvstore.Store
}

// NewReviewRepository creates a new key-value backed review repository.
func NewReviewRepository(store kvstore.Store) *ReviewRepository {
	return &ReviewRepository{store: store}
}

// Load retrieves the full review collection.
func (r *ReviewRepository) Load(ctx context.Context) ([]domain.Review, error) {
	data, err := r.store.Get(ctx, reviewsKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, apperrors.NotFound("reviews", reviewsKey)
		}
		return nil, fmt.Errorf("get reviews blob: %w", err)
	}

	var reviews []domain.Review
	if err := json.Unmarshal(data, &reviews); err != nil {
		return nil, fmt.Errorf("unmarshal reviews: %w", err)
	}

	return reviews, nil
}

// Save persists the full review collection.
func (r *ReviewRepository) Save(ctx context.Context, reviews []domain.Review) error {
	data, err := json.Marshal(reviews)
	if err != nil {
		return fmt.Errorf("marshal reviews: %w", err)
	}

	if err := r.store.Set(ctx, reviewsKey, data); err != nil {
		return fmt.Errorf("set reviews blob: %w", err)
	}

	return nil
}
