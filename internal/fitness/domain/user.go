package domain

import (
	"strings"
	"time"
)

// Gender values stored on a user. Input is matched case-insensitively.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

type User struct {
	ID           string
	Name         string
	Age          int
	WeightKg     float64
	HeightCm     float64
	Gender       string
	Goal         string
	PasswordHash string `json:"-"` // argon2id PHC (or legacy bcrypt); never leaves the service
	IsAdmin      bool
	CreatedAt    time.Time
}

// NormalizeGender trims and lower-cases a gender value.
func NormalizeGender(g string) string {
	return strings.ToLower(strings.TrimSpace(g))
}

// ValidGender reports whether g is one of the supported genders.
func ValidGender(g string) bool {
	switch NormalizeGender(g) {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}
