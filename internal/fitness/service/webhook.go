package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spano-fitness/spano/internal/fitness/domain"
	"github.com/spano-fitness/spano/internal/fitness/store"
)

var mealCommandRe = regexp.MustCompile(`^log\s+([a-zA-Z]+):\s*(.+)$`)

// ParseMealCommand parses "log <meal>: <items>". The message is trimmed and
// lower-cased first, so items come back lower-case; the meal type is
// capitalised ("lunch" -> "Lunch").
func ParseMealCommand(message string) (domain.MealCommand, error) {
	msg := strings.ToLower(strings.TrimSpace(message))

	m := mealCommandRe.FindStringSubmatch(msg)
	if m == nil {
		return domain.MealCommand{}, ErrMalformedCommand
	}

	return domain.MealCommand{
		MealType:  capitalize(m[1]),
		FoodItems: m[2],
	}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// WebhookService logs meals sent as chat commands on behalf of a named user.
type WebhookService struct {
	Meals *MealService
}

// Handle looks the user up before parsing, so an unknown user is reported as
// ErrUserNotFound even when the message is malformed too.
func (s *WebhookService) Handle(
	ctx context.Context,
	db store.Repos,
	userName, message string,
) (domain.MealLog, error) {
	user, err := db.Users().GetUserByName(ctx, userName)
	if errors.Is(err, store.ErrNotFound) {
		return domain.MealLog{}, ErrUserNotFound
	}
	if err != nil {
		return domain.MealLog{}, fmt.Errorf("load webhook user: %w", err)
	}

	cmd, err := ParseMealCommand(message)
	if err != nil {
		return domain.MealLog{}, err
	}

	return s.Meals.LogMeal(ctx, db, cmd.MealType, cmd.FoodItems, user.ID)
}
