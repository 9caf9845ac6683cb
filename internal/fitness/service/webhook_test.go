package service

import (
	"context"
	"testing"

	"github.com/spano-fitness/spano/internal/fitness/domain"
	"github.com/stretchr/testify/require"
)

func TestParseMealCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    domain.MealCommand
		wantErr bool
	}{
		{in: "log lunch: Jeera Rice, Dal", want: domain.MealCommand{MealType: "Lunch", FoodItems: "jeera rice, dal"}},
		{in: "  LOG Breakfast:dal  ", want: domain.MealCommand{MealType: "Breakfast", FoodItems: "dal"}},
		{in: "log\tdinner:   cucumber", want: domain.MealCommand{MealType: "Dinner", FoodItems: "cucumber"}},
		{in: "log snack: dal: extra", want: domain.MealCommand{MealType: "Snack", FoodItems: "dal: extra"}},
		{in: "log lunch:", wantErr: true},
		{in: "log lunch:   ", wantErr: true},
		{in: "log second breakfast: dal", wantErr: true},
		{in: "log meal2: dal", wantErr: true},
		{in: "ate lunch: dal", wantErr: true},
		{in: "loglunch: dal", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMealCommand(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrMalformedCommand)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestWebhookHandle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	u, err := (&UserService{}).Signup(ctx, s, SignupRequest{
		Name: "alice", Password: "pw", Age: 30, WeightKg: 60, HeightCm: 170, Gender: "female",
	})
	require.NoError(t, err)

	meals := &MealService{}
	wh := &WebhookService{Meals: meals}

	t.Run("logs meal", func(t *testing.T) {
		m, err := wh.Handle(ctx, s, "alice", "log lunch: Jeera Rice, Dal")
		require.NoError(t, err)
		require.Equal(t, "Lunch", m.MealType)
		require.Equal(t, "jeera rice, dal", m.FoodItems)
		require.Equal(t, u.ID, m.UserID)

		today, err := meals.Today(ctx, s, u.ID)
		require.NoError(t, err)
		require.Len(t, today, 1)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := wh.Handle(ctx, s, "ghost", "log lunch: dal")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("unknown user wins over malformed message", func(t *testing.T) {
		_, err := wh.Handle(ctx, s, "ghost", "hello there")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("malformed message", func(t *testing.T) {
		_, err := wh.Handle(ctx, s, "alice", "hello there")
		require.ErrorIs(t, err, ErrMalformedCommand)
	})
}
