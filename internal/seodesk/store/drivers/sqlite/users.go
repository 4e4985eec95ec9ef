package sqlite

import (
	"context"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) UpsertUser(ctx context.Context, u domain.User) (domain.User, error) {
	row, err := r.q.UpsertUser(ctx, gen.UpsertUserParams{
		ID:        u.ID,
		Email:     domain.NormalizeEmail(u.Email),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarUrl: u.AvatarURL,
		Now:       now(),
	})
	if err != nil {
		return domain.User{}, mapConstraint(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) MarkOnboarded(ctx context.Context, userID string) error {
	n, err := r.q.MarkUserOnboarded(ctx, gen.MarkUserOnboardedParams{
		UpdatedAt: now(),
		ID:        userID,
	})
	return expectRows(n, err, store.ErrNotFound)
}
