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

const profileKeyPrefix = "profile:"

// ProfileRepository implements repository.ProfileRepository over a kvstore.Store.
type ProfileRepository struct {
	store kvstore.Store
}

// NewProfileRepository creates a new key-value backed profile repository.
func NewProfileRepository(store kvstore.Store) *ProfileRepository {
	return &ProfileRepository{store: store}
}

// Get retrieves a profile by user ID.
func (r *ProfileRepository) Get(ctx context.Context, userID string) (*domain.User, error) {
	data, err := r.store.Get(ctx, profileKeyPrefix+userID)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, apperrors.NotFound("profile", userID)
		}
		return nil, fmt.Errorf("get profile blob: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}

	return &user, nil
}

// Save persists a profile.
func (r *ProfileRepository) Save(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	if err := r.store.Set(ctx, profileKeyPrefix+user.ID, data); err != nil {
		return fmt.Errorf("set profile blob: %w", err)
	}

	return nil
}
