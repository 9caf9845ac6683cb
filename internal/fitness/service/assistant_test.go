package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spano-fitness/spano/internal/fitness/domain"
	"github.com/spano-fitness/spano/internal/fitness/llm"
	"github.com/stretchr/testify/require"
)

func TestBuildAssistantPrompt(t *testing.T) {
	t.Parallel()

	u := domain.User{Age: 30, Gender: "male", WeightKg: 70, HeightCm: 175.5, Goal: "lose weight"}

	t.Run("no meals", func(t *testing.T) {
		p := BuildAssistantPrompt(u, nil, "what now?")
		require.Contains(t, p, "Your name is Spano.")
		require.Contains(t, p, "User Profile: Age 30, Gender male, Weight 70.0kg, Height 175.5cm. The user's primary goal is 'lose weight'.")
		require.Contains(t, p, "The user has not logged any meals yet today.")
		require.Contains(t, p, "\n\nUser's question: 'what now?'")
	})

	t.Run("with meals", func(t *testing.T) {
		meals := []domain.MealLog{
			{MealType: "Breakfast", FoodItems: "dal"},
			{MealType: "Lunch", FoodItems: "jeera rice, cucumber"},
		}
		p := BuildAssistantPrompt(u, meals, "q")
		require.Contains(t, p, "So far today, the user has eaten: Breakfast consisted of dal. Lunch consisted of jeera rice, cucumber.")
	})
}

func TestAssistantAsk(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	u, err := (&UserService{}).Signup(ctx, s, SignupRequest{
		Name: "ana", Password: "pw", Age: 31, WeightKg: 60, HeightCm: 165, Gender: "female", Goal: "run",
	})
	require.NoError(t, err)

	meals := &MealService{}
	_, err = meals.LogMeal(ctx, s, "Breakfast", "dal", u.ID)
	require.NoError(t, err)

	t.Run("answers with composed prompt", func(t *testing.T) {
		var seen string
		a := &AssistantService{Meals: meals, LLM: llm.CompleterFunc(func(_ context.Context, p string) (string, error) {
			seen = p
			return "Eat more greens.", nil
		})}

		out, err := a.Ask(ctx, s, u, "what should I eat?")
		require.NoError(t, err)
		require.Equal(t, "Eat more greens.", out)
		require.Contains(t, seen, "Breakfast consisted of dal")
		require.Contains(t, seen, "User's question: 'what should I eat?'")
	})

	t.Run("model failure is unavailable", func(t *testing.T) {
		a := &AssistantService{Meals: meals, LLM: llm.CompleterFunc(func(context.Context, string) (string, error) {
			return "", errors.New("quota exceeded")
		})}
		_, err := a.Ask(ctx, s, u, "hi")
		require.ErrorIs(t, err, ErrAssistantUnavailable)
	})

	t.Run("disabled model is unavailable", func(t *testing.T) {
		a := &AssistantService{Meals: meals, LLM: llm.Disabled{}}
		_, err := a.Ask(ctx, s, u, "hi")
		require.ErrorIs(t, err, ErrAssistantUnavailable)
	})

	t.Run("timeout is unavailable", func(t *testing.T) {
		a := &AssistantService{Meals: meals, Timeout: 10 * time.Millisecond, LLM: llm.CompleterFunc(func(ctx context.Context, _ string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})}
		_, err := a.Ask(ctx, s, u, "hi")
		require.ErrorIs(t, err, ErrAssistantUnavailable)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("empty prompt", func(t *testing.T) {
		a := &AssistantService{Meals: meals, LLM: llm.Disabled{}}
		_, err := a.Ask(ctx, s, u, "   ")
		require.ErrorIs(t, err, ErrInvalidPrompt)
	})
}
