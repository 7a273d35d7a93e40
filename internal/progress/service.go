package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/physiq/internal/telemetry/metrics"
	"github.com/2beens/physiq/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progress_test

type outcomeRepo interface {
	Upsert(ctx context.Context, userID int, date time.Time, params UpsertParams) (*Outcome, error)
	ListAll(ctx context.Context, userID int) ([]Outcome, error)
	ListRange(ctx context.Context, userID int, from, to time.Time) ([]Outcome, error)
}

type Service struct {
	repo           outcomeRepo
	loc            *time.Location
	metricsManager *metrics.Manager
	// injectable for tests
	Now func() time.Time
}

func NewService(repo outcomeRepo, loc *time.Location, metricsManager *metrics.Manager) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:           repo,
		loc:            loc,
		metricsManager: metricsManager,
		Now:            time.Now,
	}
}

// Today is the current calendar date in the service location.
func (s *Service) Today() time.Time {
	return Day(s.Now().In(s.loc))
}

// UpdateStatus applies the provided statuses to the (user, date) record, creating it
// if needed, and returns the stored record with streaks recomputed over the full history.
func (s *Service) UpdateStatus(
	ctx context.Context,
	userID int,
	date time.Time,
	workout *WorkoutStatus,
	nutrition *NutritionStatus,
) (_ *Outcome, _ *StreakResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.updatestatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if workout != nil && !workout.Valid() {
		return nil, nil, fmt.Errorf("%w: workout status %q", ErrInvalidStatus, *workout)
	}
	if nutrition != nil && !nutrition.Valid() {
		return nil, nil, fmt.Errorf("%w: nutrition status %q", ErrInvalidStatus, *nutrition)
	}

	outcome, err := s.repo.Upsert(ctx, userID, date, UpsertParams{
		WorkoutStatus:   workout,
		NutritionStatus: nutrition,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("upsert status: %w", err)
	}
	s.countUpdate("status")

	streaks, err := s.Streaks(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return outcome, streaks, nil
}

// SaveNote sets the notes of the (user, date) record, creating it if needed.
// Statuses stay untouched.
func (s *Service) SaveNote(ctx context.Context, userID int, date time.Time, note string) (_ *Outcome, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.savenote")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	outcome, err := s.repo.Upsert(ctx, userID, date, UpsertParams{
		Notes: &note,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert note: %w", err)
	}
	s.countUpdate("note")
	return outcome, nil
}

func (s *Service) Streaks(ctx context.Context, userID int) (_ *StreakResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.streaks")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	streaks := CalculateStreaks(records, s.Today())
	return &streaks, nil
}

func (s *Service) Week(ctx context.Context, userID int) (_ []WeekDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.week")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := s.Today()
	start := WeekStart(today)
	records, err := s.repo.ListRange(ctx, userID, start, start.AddDate(0, 0, DaysInWeek-1))
	if err != nil {
		return nil, fmt.Errorf("list week progress: %w", err)
	}
	return BuildWeek(records, today), nil
}

// Range returns the stored records between from and to, both inclusive.
func (s *Service) Range(ctx context.Context, userID int, from, to time.Time) (_ []Outcome, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.range")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	from, to = Day(from), Day(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to date before from date", ErrInvalidDate)
	}
	return s.repo.ListRange(ctx, userID, from, to)
}

func (s *Service) countUpdate(kind string) {
	if s.metricsManager == nil {
		return
	}
	s.metricsManager.CounterProgressUpdates.WithLabelValues(kind).Inc()
}
