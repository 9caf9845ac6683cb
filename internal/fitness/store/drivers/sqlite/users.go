package sqlite

import (
	"context"

	"github.com/spano-fitness/spano/internal/fitness/domain"
	"github.com/spano-fitness/spano/internal/fitness/store"
	"github.com/spano-fitness/spano/internal/fitness/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByName(ctx context.Context, name string) (domain.User, error) {
	row, err := r.q.GetUserByName(ctx, name)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:           u.ID,
		Name:         u.Name,
		Age:          int64(u.Age),
		WeightKg:     u.WeightKg,
		HeightCm:     u.HeightCm,
		Gender:       u.Gender,
		Goal:         u.Goal,
		PasswordHash: u.PasswordHash,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    toMicros(u.CreatedAt),
	})
	return mapConstraint(err)
}

func (r *usersRepo) SetAdmin(ctx context.Context, id string, admin bool) error {
	n, err := r.q.SetUserAdmin(ctx, gen.SetUserAdminParams{IsAdmin: admin, ID: id})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) ListUsers(ctx context.Context, offset, limit int) ([]domain.User, error) {
	rows, err := r.q.ListUsers(ctx, gen.ListUsersParams{
		Limit:  int64(limit),
		Offset: int64(offset),
	})
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUser(row))
	}
	return users, nil
}
