package plans

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrPlanNotFound   = errors.New("plan not found")
	ErrInvalidKind    = errors.New("invalid plan kind")
	ErrMalformedPlan  = errors.New("malformed plan")
	ErrGenerateFailed = errors.New("plan generation failed")
)

type Kind string

const (
	KindWorkout   Kind = "workout"
	KindNutrition Kind = "nutrition"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindWorkout, KindNutrition:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Document is the schema-less plan body as produced by the model.
type Document map[string]any

type Plan struct {
	ID        int       `json:"id"`
	UserID    int       `json:"-"`
	Kind      Kind      `json:"kind"`
	Data      Document  `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

// WeekPlan returns the week_plan array, nil when absent or not an array.
func (d Document) WeekPlan() []any {
	weekPlan, _ := d["week_plan"].([]any)
	return weekPlan
}

// DayBlock selects the block for the given weekday, see SelectDayBlock.
// A fallback element that is not an object gives nil.
func (d Document) DayBlock(weekday string) map[string]any {
	block, _ := SelectDayBlock(d.WeekPlan(), weekday).(map[string]any)
	return block
}

// Targets are the nutrition daily targets; nil fields were not provided by the plan.
type Targets struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

func (d Document) DailyTargets() Targets {
	dailyTargets, _ := d["daily_targets"].(map[string]any)
	return Targets{
		Calories: Number(dailyTargets, "calorie_target"),
		Protein:  Number(dailyTargets, "protein_g"),
		Carbs:    Number(dailyTargets, "carbs_g"),
		Fat:      Number(dailyTargets, "fat_g"),
	}
}

// Number reads a numeric field of a decoded JSON object.
func Number(obj map[string]any, key string) *float64 {
	if obj == nil {
		return nil
	}
	switch v := obj[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

// String reads a string field of a decoded JSON object, empty when absent.
func String(obj map[string]any, key string) string {
	if obj == nil {
		return ""
	}
	s, _ := obj[key].(string)
	return s
}

func (d Document) validate() error {
	if d == nil {
		return fmt.Errorf("%w: not a json object", ErrMalformedPlan)
	}
	if _, ok := d["week_plan"].([]any); !ok {
		return fmt.Errorf("%w: week_plan missing or not a list", ErrMalformedPlan)
	}
	return nil
}
