package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spano-fitness/spano/internal/fitness/domain"
	"github.com/spano-fitness/spano/internal/fitness/store"
	"github.com/spano-fitness/spano/internal/fitness/store/drivers/sqlite/gen"
	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

// DSN turns a database file path into a modernc DSN with the pragmas every
// pooled connection needs. Values that already look like DSNs pass through.
func DSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "foreign_keys(1)")
	return "file:" + path + "?" + q.Encode()
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// SetMaxOpenConns caps the pool, and with it the number of requests served
// concurrently. Zero means unlimited.
func (s *Store) SetMaxOpenConns(n int) { s.db.SetMaxOpenConns(n) }

// Conn checks out a dedicated connection for one request.
func (s *Store) Conn(ctx context.Context) (store.Conn, error) {
	c, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return newConn(c), nil
}

// WithConn runs fn on a dedicated connection and releases it on every path.
func (s *Store) WithConn(ctx context.Context, fn func(store.Conn) error) error {
	c, err := s.Conn(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = c.Close()
	}()

	return fn(c)
}

func (s *Store) Users() store.Users { return &usersRepo{q: s.q} }
func (s *Store) Meals() store.Meals { return &mealsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func mapConstraint(err error) error {
	var serr *sqlitedrv.Error
	if errors.As(err, &serr) {
		switch serr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %v", store.ErrNotFound, err)
		}
	}
	return err
}

func toMicros(t time.Time) int64 { return t.UTC().UnixMicro() }

func fromMicros(us int64) time.Time { return time.UnixMicro(us).UTC() }

func mapUser(row gen.User) domain.User {
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Age:          int(row.Age),
		WeightKg:     row.WeightKg,
		HeightCm:     row.HeightCm,
		Gender:       row.Gender,
		Goal:         row.Goal,
		PasswordHash: row.PasswordHash,
		IsAdmin:      row.IsAdmin,
		CreatedAt:    fromMicros(row.CreatedAt),
	}
}

func mapMeal(row gen.MealLog) domain.MealLog {
	return domain.MealLog{
		ID:        row.ID,
		MealType:  row.MealType,
		FoodItems: row.FoodItems,
		LoggedAt:  fromMicros(row.LoggedAt),
		UserID:    row.UserID,
	}
}
