package service

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/spano-fitness/spano/internal/fitness/domain"
	"github.com/stretchr/testify/require"
)

func validSignup(name string) SignupRequest {
	return SignupRequest{Name: name, Password: "secret", Age: 30, WeightKg: 70, HeightCm: 175, Gender: "Male", Goal: " bulk "}
}

func TestSignupValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*SignupRequest)
	}{
		{"empty name", func(r *SignupRequest) { r.Name = "  " }},
		{"long name", func(r *SignupRequest) { r.Name = fmt.Sprintf("%065d", 0) }},
		{"empty password", func(r *SignupRequest) { r.Password = "" }},
		{"zero age", func(r *SignupRequest) { r.Age = 0 }},
		{"negative weight", func(r *SignupRequest) { r.WeightKg = -1 }},
		{"zero height", func(r *SignupRequest) { r.HeightCm = 0 }},
		{"NaN weight", func(r *SignupRequest) { r.WeightKg = math.NaN() }},
		{"infinite weight", func(r *SignupRequest) { r.WeightKg = math.Inf(1) }},
		{"NaN height", func(r *SignupRequest) { r.HeightCm = math.NaN() }},
		{"infinite height", func(r *SignupRequest) { r.HeightCm = math.Inf(1) }},
		{"unknown gender", func(r *SignupRequest) { r.Gender = "robot" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := validSignup("x")
			tc.mutate(&req)
			require.ErrorIs(t, req.Validate(), ErrInvalidSignup)
		})
	}

	require.NoError(t, validSignup("x").Validate())
}

func TestSignupAndAuthenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	users := &UserService{}

	u, err := users.Signup(ctx, s, validSignup("alice"))
	require.NoError(t, err)
	require.Equal(t, domain.GenderMale, u.Gender)
	require.Equal(t, "bulk", u.Goal)
	require.False(t, u.IsAdmin)
	require.NotEqual(t, "secret", u.PasswordHash)

	_, err = users.Signup(ctx, s, validSignup("alice"))
	require.ErrorIs(t, err, ErrDuplicateUser)

	got, err := users.Authenticate(ctx, s, "alice", "secret")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = users.Authenticate(ctx, s, "alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = users.Authenticate(ctx, s, "nobody", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestListUsersClamps(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	users := &UserService{}
	for _, n := range []string{"a", "b", "c"} {
		_, err := users.Signup(ctx, s, validSignup(n))
		require.NoError(t, err)
	}

	all, err := users.ListUsers(ctx, s, -5, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)

	page, err := users.ListUsers(ctx, s, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
}

func TestBootstrapIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	users := &UserService{}
	b := &BootstrapService{
		Users: users,
		Accounts: []DefaultAccount{
			DefaultUserAccount("user", "userpw"),
			DefaultAdminAccount("admin", "adminpw"),
			DefaultAdminAccount("", ""),
		},
	}

	require.NoError(t, b.EnsureDefaultAccounts(ctx, s))
	require.NoError(t, b.EnsureDefaultAccounts(ctx, s))

	list, err := s.Users().ListUsers(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, list, 2)

	u, err := s.Users().GetUserByName(ctx, "user")
	require.NoError(t, err)
	require.False(t, u.IsAdmin)
	require.Equal(t, 30, u.Age)
	require.Equal(t, "maintenance", u.Goal)

	a, err := s.Users().GetUserByName(ctx, "admin")
	require.NoError(t, err)
	require.True(t, a.IsAdmin)
	require.Equal(t, "admin tasks", a.Goal)

	_, err = users.Authenticate(ctx, s, "admin", "adminpw")
	require.NoError(t, err)
}

func TestBootstrapPromotesExistingAdminAccount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	users := &UserService{}

	_, err := users.Signup(ctx, s, validSignup("admin"))
	require.NoError(t, err)

	b := &BootstrapService{Users: users, Accounts: []DefaultAccount{DefaultAdminAccount("admin", "other")}}
	require.NoError(t, b.EnsureDefaultAccounts(ctx, s))

	a, err := s.Users().GetUserByName(ctx, "admin")
	require.NoError(t, err)
	require.True(t, a.IsAdmin)

	// The existing password is kept.
	_, err = users.Authenticate(ctx, s, "admin", "secret")
	require.NoError(t, err)
}
