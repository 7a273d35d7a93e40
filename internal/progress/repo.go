package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/physiq/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const outcomeColumns = `id, user_id, date, workout_status, nutrition_status, notes, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert creates the (user, date) record with default statuses if it does not exist yet,
// and applies the non-nil fields of params on top, in one statement.
func (r *Repo) Upsert(ctx context.Context, userID int, date time.Time, params UpsertParams) (_ *Outcome, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("date", date.Format(DateLayout)),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	row := tx.QueryRow(ctx, `
		INSERT INTO daily_progress (user_id, date, workout_status, nutrition_status, notes)
		VALUES ($1, $2, COALESCE($3::text, 'missed'), COALESCE($4::text, 'none'), COALESCE($5::text, ''))
		ON CONFLICT (user_id, date) DO UPDATE SET
			workout_status = COALESCE($3::text, daily_progress.workout_status),
			nutrition_status = COALESCE($4::text, daily_progress.nutrition_status),
			notes = COALESCE($5::text, daily_progress.notes),
			updated_at = now()
		RETURNING `+outcomeColumns,
		userID,
		Day(date),
		optString(params.WorkoutStatus),
		optString(params.NutritionStatus),
		params.Notes,
	)

	outcome, err := scanOutcome(row)
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

func (r *Repo) ListAll(ctx context.Context, userID int) (_ []Outcome, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT `+outcomeColumns+`
		FROM daily_progress
		WHERE user_id = $1
		ORDER BY date
	`, userID)
	if err != nil {
		return nil, err
	}
	return rows2outcomes(rows)
}

// ListRange returns the user's records with from <= date <= to.
func (r *Repo) ListRange(ctx context.Context, userID int, from, to time.Time) (_ []Outcome, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("from", from.Format(DateLayout)),
		attribute.String("to", to.Format(DateLayout)),
	)

	rows, err := r.db.Query(ctx, `
		SELECT `+outcomeColumns+`
		FROM daily_progress
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`, userID, Day(from), Day(to))
	if err != nil {
		return nil, err
	}
	return rows2outcomes(rows)
}

func rows2outcomes(rows pgx.Rows) ([]Outcome, error) {
	defer rows.Close()

	outcomes := make([]Outcome, 0)
	for rows.Next() {
		outcome, err := scanOutcome(rows)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, *outcome)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func scanOutcome(row pgx.Row) (*Outcome, error) {
	var (
		outcome         Outcome
		workoutStatus   string
		nutritionStatus string
	)
	if err := row.Scan(
		&outcome.ID,
		&outcome.UserID,
		&outcome.Date,
		&workoutStatus,
		&nutritionStatus,
		&outcome.Notes,
		&outcome.CreatedAt,
		&outcome.UpdatedAt,
	); err != nil {
		return nil, err
	}
	outcome.WorkoutStatus = WorkoutStatus(workoutStatus)
	outcome.NutritionStatus = NutritionStatus(nutritionStatus)
	return &outcome, nil
}

func optString[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
