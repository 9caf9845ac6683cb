package store

import (
	"context"
	"errors"
	"time"

	"github.com/spano-fitness/spano/internal/fitness/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Repos groups the sub-repositories. Both the pool-backed Store and a
// request-scoped Conn expose them.
type Repos interface {
	Users() Users
	Meals() Meals
}

// Store is the root data access interface implemented by the drivers.
type Store interface {
	Repos

	// Conn checks out one connection from the pool. The caller MUST Close it.
	Conn(ctx context.Context) (Conn, error)

	// WithConn runs fn on a checked-out connection and always returns it to
	// the pool, even when fn panics.
	WithConn(ctx context.Context, fn func(Conn) error) error

	ApplyMigrations() error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Conn is a single pooled connection. Every statement on it autocommits.
type Conn interface {
	Repos

	// Close returns the connection to the pool. Safe to call more than once.
	Close() error
}

type Users interface {
	// GetUserByName looks a user up by their unique name.
	GetUserByName(ctx context.Context, name string) (domain.User, error)

	// CreateUser inserts u. A taken name yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// SetAdmin flips the admin flag. Unknown ids yield ErrNotFound.
	SetAdmin(ctx context.Context, id string, admin bool) error

	// ListUsers pages through users in creation order.
	ListUsers(ctx context.Context, offset, limit int) ([]domain.User, error)
}

type Meals interface {
	// CreateMeal inserts m; m.LoggedAt must already be set.
	CreateMeal(ctx context.Context, m domain.MealLog) error

	// ListMealsForUserInRange returns the user's meals with start <= logged_at <= end,
	// oldest first, ties broken by id.
	ListMealsForUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.MealLog, error)
}
