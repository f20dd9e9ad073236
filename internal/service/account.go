package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/oakmart/storefront/pkg/errors"

	"github.com/oakmart/storefront/internal/auth"
	"github.com/oakmart/storefront/internal/domain"
	"github.com/oakmart/storefront/internal/repository"
)

// bcryptCost is the cost factor for bcrypt password hashing.
const bcryptCost = 12

// minPasswordLength is the minimum password length required.
const minPasswordLength = 8

// Demo account credentials. The storefront ships with a single seeded
// account so the sign-in flow works without an identity provider.
const (
	demoUserID   = "u1"
	demoEmail    = "john.doe@example.com"
	demoPassword = "password123"
)

// credential pairs a user id with its password hash.
type credential struct {
	userID       string
	passwordHash []byte
}

// RegisterInput holds the parameters for registering a new account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// UpdateProfileInput holds the parameters for updating a profile. Nil
// fields are left unchanged.
type UpdateProfileInput struct {
	FirstName   *string
	LastName    *string
	Avatar      *string
	PhoneNumber *string
	Address     *domain.Address
}

// AccountService implements the mock sign-in flow and profile management.
// Credentials live in memory; profiles are written through to the durable
// store best-effort so edits survive a restart.
type AccountService struct {
	profiles repository.ProfileRepository
	jwt      *auth.JWTManager
	logger   *slog.Logger

	mu          sync.Mutex
	credentials map[string]credential
	users       map[string]*domain.User
	restored    map[string]bool
}

// NewAccountService creates a new account service seeded with the demo
// account.
func NewAccountService(profiles repository.ProfileRepository, jwt *auth.JWTManager, logger *slog.Logger) (*AccountService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	s := &AccountService{
		profiles: profiles,
		jwt:      jwt,
		logger:   logger,
		credentials: map[string]credential{
			demoEmail: {userID: demoUserID, passwordHash: hash},
		},
		users: map[string]*domain.User{
			demoUserID: demoUser(),
		},
		restored: make(map[string]bool),
	}
	return s, nil
}

// demoUser returns the seeded demo profile.
func demoUser() *domain.User {
	return &domain.User{
		ID:          demoUserID,
		Email:       demoEmail,
		FirstName:   "John",
		LastName:    "Doe",
		Avatar:      "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop",
		PhoneNumber: "+1 (555) 123-4567",
		Address: &domain.Address{
			Street:  "123 Tech Street",
			City:    "Silicon Valley",
			State:   "CA",
			ZipCode: "94025",
			Country: "USA",
		},
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Login authenticates an account with email and password and returns the
// profile and a signed access token.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" {
		return nil, "", apperrors.InvalidInput("email is required")
	}
	if password == "" {
		return nil, "", apperrors.InvalidInput("password is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cred, ok := s.credentials[strings.ToLower(email)]
	if !ok {
		return nil, "", apperrors.Unauthorized("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword(cred.passwordHash, []byte(password)); err != nil {
		return nil, "", apperrors.Unauthorized("invalid email or password")
	}

	user := s.profileLocked(ctx, cred.userID)
	if user == nil {
		return nil, "", apperrors.NotFound("profile", cred.userID)
	}

	token, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate access token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return copyUser(user), token, nil
}

// Register creates a new account and returns the profile and a signed
// access token.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	if input.Email == "" {
		return nil, "", apperrors.InvalidInput("email is required")
	}
	if input.FirstName == "" {
		return nil, "", apperrors.InvalidInput("first name is required")
	}
	if input.LastName == "" {
		return nil, "", apperrors.InvalidInput("last name is required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, "", apperrors.InvalidInput(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	email := strings.ToLower(input.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.credentials[email]; exists {
		return nil, "", apperrors.InvalidInput("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:        uuid.New().String(),
		Email:     email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		CreatedAt: time.Now().UTC(),
	}

	s.credentials[email] = credential{userID: user.ID, passwordHash: hash}
	s.users[user.ID] = user
	s.restored[user.ID] = true
	s.persistProfileLocked(ctx, user)

	token, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate access token: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return copyUser(user), token, nil
}

// GetProfile retrieves a profile by user id.
func (s *AccountService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.profileLocked(ctx, userID)
	if user == nil {
		return nil, apperrors.NotFound("profile", userID)
	}
	return copyUser(user), nil
}

// UpdateProfile merges the given fields into the profile. Nil fields are
// left unchanged; name fields must not be blanked.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.profileLocked(ctx, userID)
	if user == nil {
		return nil, apperrors.NotFound("profile", userID)
	}

	if input.FirstName != nil {
		if *input.FirstName == "" {
			return nil, apperrors.InvalidInput("first name must not be empty")
		}
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		if *input.LastName == "" {
			return nil, apperrors.InvalidInput("last name must not be empty")
		}
		user.LastName = *input.LastName
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.Address != nil {
		addr := *input.Address
		user.Address = &addr
	}

	s.persistProfileLocked(ctx, user)

	s.logger.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID),
	)

	return copyUser(user), nil
}

// profileLocked returns the in-memory profile for the user, restoring the
// persisted copy on first touch. Callers must hold s.mu. Returns nil for
// an unknown user.
func (s *AccountService) profileLocked(ctx context.Context, userID string) *domain.User {
	user, ok := s.users[userID]
	if !ok {
		return nil
	}

	if s.restored[userID] {
		return user
	}
	s.restored[userID] = true

	persisted, err := s.profiles.Get(ctx, userID)
	switch {
	case err == nil:
		s.users[userID] = persisted
		user = persisted
	case !errors.Is(err, apperrors.ErrNotFound):
		s.logger.WarnContext(ctx, "failed to restore profile, using seed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}
	return user
}

// persistProfileLocked writes the profile back to the durable store.
// Persistence is best-effort: a failure is logged and the in-memory state
// stands.
func (s *AccountService) persistProfileLocked(ctx context.Context, user *domain.User) {
	if err := s.profiles.Save(ctx, user); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist profile",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
	}
}

func copyUser(user *domain.User) *domain.User {
	out := *user
	if user.Address != nil {
		addr := *user.Address
		out.Address = &addr
	}
	return &out
}
