package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/physiq/internal/coach"
	"github.com/2beens/physiq/internal/plans"
	"github.com/2beens/physiq/internal/progress"
	"github.com/2beens/physiq/internal/telemetry/tracing"
	"github.com/2beens/physiq/internal/users"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=dashboard_test

type planSource interface {
	Latest(ctx context.Context, userID int, kind plans.Kind) (*plans.Plan, error)
}

type bannerSource interface {
	Banner(ctx context.Context, userID int, in coach.BannerInput) string
}

type streakSource interface {
	Streaks(ctx context.Context, userID int) (*progress.StreakResult, error)
}

type userSource interface {
	User(ctx context.Context, userID int) (*users.User, error)
}

type MacroTargets struct {
	Protein *float64 `json:"protein"`
	Carbs   *float64 `json:"carbs"`
	Fat     *float64 `json:"fat"`
}

// Overview is today's slice of the user's plans together with the coach banner and streaks.
type Overview struct {
	Date               string                `json:"date"`
	PrettyDate         string                `json:"today_str"`
	CoachBanner        string                `json:"coach_banner"`
	WorkoutToday       map[string]any        `json:"workout_today"`
	NutritionToday     map[string]any        `json:"nutrition_today"`
	Meals              []any                 `json:"meals"`
	MacroTargets       MacroTargets          `json:"macro_targets"`
	DailyCalorieTarget *float64              `json:"daily_calorie_target"`
	Streaks            progress.StreakResult `json:"streaks"`
}

type Service struct {
	plans   planSource
	coach   bannerSource
	streaks streakSource
	users   userSource
	loc     *time.Location

	Now func() time.Time
}

func NewService(
	plans planSource,
	coach bannerSource,
	streaks streakSource,
	users userSource,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		plans:   plans,
		coach:   coach,
		streaks: streaks,
		users:   users,
		loc:     loc,
		Now:     time.Now,
	}
}

func (s *Service) Overview(ctx context.Context, userID int) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	now := s.Now().In(s.loc)
	weekday := now.Weekday().String()

	user, err := s.users.User(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	overview := &Overview{
		Date:       now.Format(progress.DateLayout),
		PrettyDate: now.Format("Monday, Jan 2"),
		Meals:      []any{},
	}

	workoutPlan, err := s.latestPlan(ctx, userID, plans.KindWorkout)
	if err != nil {
		return nil, err
	}
	if workoutPlan != nil {
		overview.WorkoutToday = workoutPlan.Data.DayBlock(weekday)
	}

	var targets plans.Targets
	nutritionPlan, err := s.latestPlan(ctx, userID, plans.KindNutrition)
	if err != nil {
		return nil, err
	}
	if nutritionPlan != nil {
		overview.NutritionToday = nutritionPlan.Data.DayBlock(weekday)
		targets = nutritionPlan.Data.DailyTargets()
		if meals, ok := overview.NutritionToday["meals"].([]any); ok {
			overview.Meals = meals
		}
	}
	overview.MacroTargets = MacroTargets{
		Protein: targets.Protein,
		Carbs:   targets.Carbs,
		Fat:     targets.Fat,
	}
	overview.DailyCalorieTarget = targets.Calories

	streaks, err := s.streaks.Streaks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get streaks: %w", err)
	}
	overview.Streaks = *streaks

	overview.CoachBanner = s.coach.Banner(ctx, userID, coach.BannerInput{
		UserName:  user.Username,
		Workout:   overview.WorkoutToday,
		Nutrition: overview.NutritionToday,
		Targets:   targets,
	})

	return overview, nil
}

func (s *Service) latestPlan(ctx context.Context, userID int, kind plans.Kind) (*plans.Plan, error) {
	plan, err := s.plans.Latest(ctx, userID, kind)
	if errors.Is(err, plans.ErrPlanNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get latest %s plan: %w", kind, err)
	}
	return plan, nil
}
