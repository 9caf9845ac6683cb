package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spano-fitness/spano/internal/fitness/domain"
	"github.com/spano-fitness/spano/internal/fitness/store"
	"github.com/spano-fitness/spano/pkg/idx"
)

// MealService logs meals and reads them back per UTC day.
type MealService struct {
	Now func() time.Time
}

// LogMeal stores a meal for userID stamped with the current UTC time. Items
// are kept verbatim; they are not checked against any food table.
func (s *MealService) LogMeal(
	ctx context.Context,
	db store.Repos,
	mealType, foodItems, userID string,
) (domain.MealLog, error) {
	mealType = strings.TrimSpace(mealType)
	foodItems = strings.TrimSpace(foodItems)
	if mealType == "" || foodItems == "" {
		return domain.MealLog{}, ErrInvalidMeal
	}

	now := s.now().UTC()
	m := domain.MealLog{
		ID:        idx.NewAt(now).String(),
		MealType:  mealType,
		FoodItems: foodItems,
		LoggedAt:  now,
		UserID:    userID,
	}
	if err := db.Meals().CreateMeal(ctx, m); err != nil {
		return domain.MealLog{}, fmt.Errorf("create meal: %w", err)
	}
	return m, nil
}

// MealsForUserOnDate returns the user's meals logged on date's UTC calendar
// day, inclusive of both the first and last microsecond, oldest first.
func (s *MealService) MealsForUserOnDate(
	ctx context.Context,
	db store.Repos,
	userID string,
	date time.Time,
) ([]domain.MealLog, error) {
	start, end := DayBounds(date)
	meals, err := db.Meals().ListMealsForUserInRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

// Today is MealsForUserOnDate for the current UTC date.
func (s *MealService) Today(ctx context.Context, db store.Repos, userID string) ([]domain.MealLog, error) {
	return s.MealsForUserOnDate(ctx, db, userID, s.now())
}

// DayBounds returns [00:00:00, 23:59:59.999999] UTC of t's UTC date.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1).Add(-time.Microsecond)
}

func (s *MealService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
