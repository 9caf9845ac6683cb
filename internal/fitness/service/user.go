package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/spano-fitness/spano/internal/fitness/domain"
	"github.com/spano-fitness/spano/internal/fitness/store"
	"github.com/spano-fitness/spano/pkg/cryptox"
	"github.com/spano-fitness/spano/pkg/idx"
)

const maxNameLength = 64

// MaxListLimit caps one page of the admin user list.
const MaxListLimit = 100

// SignupRequest carries the signup form fields.
type SignupRequest struct {
	Name     string
	Password string
	Age      int
	WeightKg float64
	HeightCm float64
	Gender   string
	Goal     string
}

// Validate reports the first problem with the request, wrapped in ErrInvalidSignup.
func (r SignupRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	switch {
	case name == "" || utf8.RuneCountInString(name) > maxNameLength:
		return fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidSignup, maxNameLength)
	case r.Password == "":
		return fmt.Errorf("%w: password is required", ErrInvalidSignup)
	case r.Age <= 0:
		return fmt.Errorf("%w: age must be positive", ErrInvalidSignup)
	case !positiveFinite(r.WeightKg):
		return fmt.Errorf("%w: weight must be a positive number", ErrInvalidSignup)
	case !positiveFinite(r.HeightCm):
		return fmt.Errorf("%w: height must be a positive number", ErrInvalidSignup)
	case !domain.ValidGender(r.Gender):
		return fmt.Errorf("%w: gender must be male or female", ErrInvalidSignup)
	}
	return nil
}

// positiveFinite is false for NaN and both infinities.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

type UserService struct {
	Now func() time.Time
}

// Signup validates and stores a new, non-admin user.
func (s *UserService) Signup(ctx context.Context, db store.Repos, req SignupRequest) (domain.User, error) {
	if err := req.Validate(); err != nil {
		return domain.User{}, err
	}
	return s.create(ctx, db, req, false)
}

func (s *UserService) create(ctx context.Context, db store.Repos, req SignupRequest, admin bool) (domain.User, error) {
	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	u := domain.User{
		ID:           idx.NewAt(now).String(),
		Name:         strings.TrimSpace(req.Name),
		Age:          req.Age,
		WeightKg:     req.WeightKg,
		HeightCm:     req.HeightCm,
		Gender:       domain.NormalizeGender(req.Gender),
		Goal:         strings.TrimSpace(req.Goal),
		PasswordHash: hash,
		IsAdmin:      admin,
		CreatedAt:    now,
	}

	err = db.Users().CreateUser(ctx, u)
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.User{}, ErrDuplicateUser
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Authenticate checks a name/password pair. Unknown users and wrong passwords
// both yield ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, db store.Repos, name, password string) (domain.User, error) {
	u, err := db.Users().GetUserByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		// Unknown names still pay for one verification.
		_ = cryptox.CheckPassword(password, dummyHash())
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("load user: %w", err)
	}

	if !cryptox.CheckPassword(password, u.PasswordHash) {
		return domain.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// ListUsers returns one page of users. Limits outside 1..MaxListLimit are
// clamped and a negative offset is treated as zero.
func (s *UserService) ListUsers(ctx context.Context, db store.Repos, offset, limit int) ([]domain.User, error) {
	offset = max(offset, 0)
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	return db.Users().ListUsers(ctx, offset, limit)
}

func (s *UserService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// dummyHash is a real hash of a throwaway password, computed on first use.
var dummyHash = sync.OnceValue(func() string {
	h, _ := cryptox.HashPassword("spano-timing-equaliser")
	return h
})
