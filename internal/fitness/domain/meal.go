package domain

import "time"

// MealLog is one eating event. FoodItems is the raw comma separated text the
// user entered; it is never validated against the food table.
type MealLog struct {
	ID        string
	MealType  string
	FoodItems string
	LoggedAt  time.Time // UTC, assigned at insert
	UserID    string
}

// MealCommand is a parsed "log <meal>: <items>" webhook message.
type MealCommand struct {
	MealType  string
	FoodItems string
}
