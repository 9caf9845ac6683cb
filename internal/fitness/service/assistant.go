package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spano-fitness/spano/internal/fitness/domain"
	"github.com/spano-fitness/spano/internal/fitness/llm"
	"github.com/spano-fitness/spano/internal/fitness/store"
	"github.com/spano-fitness/spano/pkg/slogx"
)

// DefaultAssistantTimeout bounds a single model call.
const DefaultAssistantTimeout = 30 * time.Second

const assistantPersona = "You are a helpful and friendly AI nutrition assistant. Your name is Spano. " +
	"You provide supportive and brief advice based on the user's profile, goals, and food intake. " +
	"Do not give medical advice. Keep your answers concise and easy to understand, like a chat message. " +
	"Here is the user's information: "

// AssistantService answers nutrition questions with the user's profile and
// today's meals as context.
type AssistantService struct {
	LLM     llm.Completer
	Meals   *MealService
	Timeout time.Duration
}

// Ask composes the prompt and calls the model. Model failures of any kind
// are logged and reported as ErrAssistantUnavailable.
func (s *AssistantService) Ask(ctx context.Context, db store.Repos, user domain.User, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrInvalidPrompt
	}

	meals, err := s.Meals.Today(ctx, db, user.ID)
	if err != nil {
		return "", err
	}

	prompt := BuildAssistantPrompt(user, meals, question)

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultAssistantTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	answer, err := s.LLM.Complete(callCtx, prompt)
	if err != nil {
		slogx.FromContext(ctx).Error("assistant call failed", "err", err)
		return "", fmt.Errorf("%w: %w", ErrAssistantUnavailable, err)
	}
	return answer, nil
}

// BuildAssistantPrompt renders the full prompt sent to the model.
func BuildAssistantPrompt(user domain.User, meals []domain.MealLog, question string) string {
	profile := fmt.Sprintf(
		"User Profile: Age %d, Gender %s, Weight %skg, Height %scm. The user's primary goal is '%s'.",
		user.Age, user.Gender, formatNumber(user.WeightKg), formatNumber(user.HeightCm), user.Goal,
	)

	food := "The user has not logged any meals yet today."
	if len(meals) > 0 {
		eaten := lo.Map(meals, func(m domain.MealLog, _ int) string {
			return m.MealType + " consisted of " + m.FoodItems
		})
		food = "So far today, the user has eaten: " + strings.Join(eaten, ". ") + "."
	}

	return assistantPersona + profile + " " + food + "\n\nUser's question: '" + question + "'"
}

// formatNumber prints whole numbers with one decimal (70.0) and others as-is.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
