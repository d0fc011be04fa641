// Package services contains the server-side business logic: account
// registration, session issuance and revocation, the file catalog, and
// store health reporting.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ASLawan/alx-files-manager/internal/common"
	"github.com/ASLawan/alx-files-manager/internal/cryptox"
	"github.com/ASLawan/alx-files-manager/internal/server/models"
	"github.com/ASLawan/alx-files-manager/internal/server/repositories/users"
	"github.com/ASLawan/alx-files-manager/internal/server/sessions"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService handles registration and the session lifecycle:
// Register creates accounts, Login mints session tokens, Logout revokes
// them, WhoAmI resolves a token back to its account.
type UserService struct {
	users    users.Repository
	sessions sessions.Store
}

func NewUserService(u users.Repository, s sessions.Store) *UserService {
	return &UserService{users: u, sessions: s}
}

// Register creates a new account with the given credentials. The email must
// be unused. The password is stored only as its one-way digest.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" {
		return nil, common.ErrorMissingEmail
	}
	if password == "" {
		return nil, common.ErrorMissingPassword
	}

	// Check-then-insert: two concurrent registrations with the same email
	// can both pass this lookup. Accepted limitation, see the users
	// Repository contract.
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: cryptox.HashPassword(password),
	}

	user, err = s.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return user, nil
}

// Login verifies the credentials and issues a fresh session token with the
// default TTL. Unknown emails and wrong passwords are indistinguishable to
// the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", common.ErrorUnauthorized
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	if user.PasswordHash != cryptox.HashPassword(password) {
		return "", common.ErrorUnauthorized
	}

	token := uuid.NewString()
	if err := s.sessions.Put(ctx, token, user.ID.Hex(), sessions.DefaultTTL); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return token, nil
}

// Logout revokes the session token. An unknown or expired token yields
// ErrorUnauthorized; a defensive delete is still issued so a lingering key
// never survives a failed logout.
func (s *UserService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return common.ErrorUnauthorized
	}

	if _, err := s.sessions.Get(ctx, token); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = s.sessions.Delete(ctx, token)
			return common.ErrorUnauthorized
		}
		return fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return nil
}

// WhoAmI resolves a session token to its account.
func (s *UserService) WhoAmI(ctx context.Context, token string) (*models.User, error) {
	return authenticate(ctx, s.sessions, s.users, token)
}

// authenticate resolves a token to the owning user. Any failure along the
// way (missing token, expired session, dangling user id) collapses into
// ErrorUnauthorized.
func authenticate(ctx context.Context, store sessions.Store, repo users.Repository, token string) (*models.User, error) {
	if token == "" {
		return nil, common.ErrorUnauthorized
	}

	userID, err := store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	user, err := repo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return user, nil
}
