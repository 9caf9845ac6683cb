package service

import (
	"math"
	"strings"

	"github.com/samber/lo"
	"github.com/spano-fitness/spano/internal/fitness/domain"
)

// DefaultFoods is the built-in composition table, keyed by lower-case name.
// It is read-only.
var DefaultFoods = map[string]domain.Nutrients{
	"jeera rice": {Calories: 250, Protein: 5, Carbs: 45, Fiber: 2},
	"dal":        {Calories: 180, Protein: 12, Carbs: 20, Fiber: 5},
	"cucumber":   {Calories: 16, Protein: 1, Carbs: 4, Fiber: 1},
}

// NutritionEngine computes BMR and nutrient totals. The zero value uses
// DefaultFoods and no hooks.
type NutritionEngine struct {
	Foods map[string]domain.Nutrients

	// OnUnmatchedItem is called for each food token missing from Foods.
	OnUnmatchedItem func(item string)

	// OnUnknownGender is called when BMR gets a gender it has no formula for.
	OnUnknownGender func(gender string)
}

// BMR is the Harris-Benedict basal metabolic rate in kcal/day. Genders other
// than male and female yield 0.
func (e *NutritionEngine) BMR(gender string, weightKg, heightCm float64, ageYears int) float64 {
	age := float64(ageYears)
	switch domain.NormalizeGender(gender) {
	case domain.GenderMale:
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*age
	case domain.GenderFemale:
		return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*age
	default:
		if e.OnUnknownGender != nil {
			e.OnUnknownGender(gender)
		}
		return 0
	}
}

// UserBMR is BMR for a user's stored profile.
func (e *NutritionEngine) UserBMR(u domain.User) float64 {
	return e.BMR(u.Gender, u.WeightKg, u.HeightCm, u.Age)
}

// Aggregate sums nutrients over every food token of every meal. Repeated
// items count each time; blank tokens are skipped.
func (e *NutritionEngine) Aggregate(meals []domain.MealLog) domain.Totals {
	foods := e.Foods
	if foods == nil {
		foods = DefaultFoods
	}

	var t domain.Totals
	for _, m := range meals {
		for _, item := range SplitFoodItems(m.FoodItems) {
			n, ok := foods[item]
			if !ok {
				t.Unmatched++
				if e.OnUnmatchedItem != nil {
					e.OnUnmatchedItem(item)
				}
				continue
			}
			t.Nutrients = t.Nutrients.Add(n)
		}
	}
	return t
}

// SplitFoodItems splits a comma separated list into trimmed, lower-case,
// non-empty tokens.
func SplitFoodItems(raw string) []string {
	return lo.FilterMap(strings.Split(raw, ","), func(s string, _ int) (string, bool) {
		s = strings.ToLower(strings.TrimSpace(s))
		return s, s != ""
	})
}

// RoundTo rounds v half away from zero to the given number of decimals.
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
