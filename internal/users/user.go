package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameTaken   = errors.New("username taken")
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("invalid profile")
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

var Genders = []string{"male", "female"}

var ActivityLevels = []string{"sedentary", "light", "moderate", "active", "very_active"}

type Profile struct {
	UserID             int             `json:"user_id"`
	Age                *int            `json:"age"`
	Height             string          `json:"height"`
	Weight             string          `json:"weight"`
	Gender             string          `json:"gender"`
	FitnessGoal        string          `json:"fitness_goal"`
	ActivityLevel      string          `json:"activity_level"`
	DietaryPreferences string          `json:"dietary_preferences"`
	Allergies          string          `json:"allergies"`
	Schedule           json.RawMessage `json:"schedule,omitempty"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// NewProfile returns the empty profile every new user starts with.
func NewProfile(userID int) Profile {
	return Profile{
		UserID:        userID,
		Gender:        "male",
		ActivityLevel: "moderate",
	}
}

// IsComplete reports whether the profile carries enough to generate plans from.
func (p Profile) IsComplete() bool {
	return p.Age != nil &&
		strings.TrimSpace(p.Height) != "" &&
		strings.TrimSpace(p.Weight) != "" &&
		strings.TrimSpace(p.FitnessGoal) != ""
}

func (p Profile) Validate() error {
	if p.Age != nil && (*p.Age < 10 || *p.Age > 120) {
		return fmt.Errorf("%w: age %d out of range", ErrInvalidProfile, *p.Age)
	}
	if !oneOf(p.Gender, Genders) {
		return fmt.Errorf("%w: gender %q", ErrInvalidProfile, p.Gender)
	}
	if !oneOf(p.ActivityLevel, ActivityLevels) {
		return fmt.Errorf("%w: activity level %q", ErrInvalidProfile, p.ActivityLevel)
	}
	if len(p.Schedule) > 0 && !json.Valid(p.Schedule) {
		return fmt.Errorf("%w: schedule is not valid json", ErrInvalidProfile)
	}
	return nil
}

func oneOf(val string, allowed []string) bool {
	for _, a := range allowed {
		if val == a {
			return true
		}
	}
	return false
}
