package sqlite

import (
	"context"
	"time"

	"github.com/spano-fitness/spano/internal/fitness/domain"
	"github.com/spano-fitness/spano/internal/fitness/store/drivers/sqlite/gen"
)

type mealsRepo struct {
	q *gen.Queries
}

func (r *mealsRepo) CreateMeal(ctx context.Context, m domain.MealLog) error {
	err := r.q.CreateMealLog(ctx, gen.CreateMealLogParams{
		ID:        m.ID,
		UserID:    m.UserID,
		MealType:  m.MealType,
		FoodItems: m.FoodItems,
		LoggedAt:  toMicros(m.LoggedAt),
	})
	return mapConstraint(err)
}

func (r *mealsRepo) ListMealsForUserInRange(
	ctx context.Context,
	userID string,
	start, end time.Time,
) ([]domain.MealLog, error) {
	rows, err := r.q.ListMealLogsForUserInRange(ctx, gen.ListMealLogsForUserInRangeParams{
		UserID:      userID,
		StartMicros: toMicros(start),
		EndMicros:   toMicros(end),
	})
	if err != nil {
		return nil, err
	}

	meals := make([]domain.MealLog, 0, len(rows))
	for _, row := range rows {
		meals = append(meals, mapMeal(row))
	}
	return meals, nil
}
