package progress

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidStatus = errors.New("invalid status")
)

type WorkoutStatus string

const (
	WorkoutDone   WorkoutStatus = "done"
	WorkoutMissed WorkoutStatus = "missed"
	WorkoutRest   WorkoutStatus = "rest"
)

func (s WorkoutStatus) Valid() bool {
	switch s {
	case WorkoutDone, WorkoutMissed, WorkoutRest:
		return true
	}
	return false
}

type NutritionStatus string

const (
	NutritionHit    NutritionStatus = "hit"
	NutritionMissed NutritionStatus = "missed"
	NutritionNone   NutritionStatus = "none"
)

func (s NutritionStatus) Valid() bool {
	switch s {
	case NutritionHit, NutritionMissed, NutritionNone:
		return true
	}
	return false
}

// Outcome is a single day of a user's adherence log.
type Outcome struct {
	ID              int             `json:"id"`
	UserID          int             `json:"-"`
	Date            time.Time       `json:"date"`
	WorkoutStatus   WorkoutStatus   `json:"workout_status"`
	NutritionStatus NutritionStatus `json:"nutrition_status"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// UpsertParams holds the fields to change; nil leaves the stored value as is.
type UpsertParams struct {
	WorkoutStatus   *WorkoutStatus
	NutritionStatus *NutritionStatus
	Notes           *string
}

// Day normalizes t to the midnight (UTC) of its calendar date in t's own location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	date, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrInvalidDate, s)
	}
	return date, nil
}

// ParseWorkoutStatus returns nil for an empty value, meaning "not provided".
func ParseWorkoutStatus(s string) (*WorkoutStatus, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}
	status := WorkoutStatus(s)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: workout status %q", ErrInvalidStatus, s)
	}
	return &status, nil
}

// ParseNutritionStatus returns nil for an empty value, meaning "not provided".
func ParseNutritionStatus(s string) (*NutritionStatus, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}
	status := NutritionStatus(s)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: nutrition status %q", ErrInvalidStatus, s)
	}
	return &status, nil
}
