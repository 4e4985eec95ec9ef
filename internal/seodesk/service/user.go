package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

// UserService mirrors identities from access tokens into the local user
// directory so invites can be resolved by e-mail.
type UserService struct {
	Store store.Store
}

// SyncUser records the caller's profile. Tokens without an e-mail only work
// for users already known to the directory.
func (s *UserService) SyncUser(ctx context.Context, u domain.User) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if u.Email == "" {
		existing, err := s.Store.Users().GetUserByID(ctx, u.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.User{}, ErrProfileIncomplete
			}
			return domain.User{}, err
		}
		return existing, nil
	}

	stored, err := s.Store.Users().UpsertUser(ctx, u)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("email already linked to another user",
				slog.String("user_id", u.ID),
			)
			return domain.User{}, ErrEmailTaken
		}
		log.Error("failed to upsert user", slog.Any("error", err))
		return domain.User{}, err
	}
	return stored, nil
}

// GetUser fetches a user by id.
func (s *UserService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}
