package plans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/physiq/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, userID int, kind Kind, doc Document) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("kind", string(kind)),
	)

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal plan: %w", err)
	}

	plan := &Plan{
		UserID: userID,
		Kind:   kind,
		Data:   doc,
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO plan (user_id, kind, data)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, userID, string(kind), data).Scan(&plan.ID, &plan.CreatedAt)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// Latest returns the most recently created plan of the given kind.
func (r *Repo) Latest(ctx context.Context, userID int, kind Kind) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.latest")
	defer func() {
		if errors.Is(err, ErrPlanNotFound) {
			// not found is a regular outcome here
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("kind", string(kind)),
	)

	var (
		plan     Plan
		kindStr  string
		dataJSON []byte
	)
	err = r.db.QueryRow(ctx, `
		SELECT id, user_id, kind, data, created_at
		FROM plan
		WHERE user_id = $1 AND kind = $2
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, userID, string(kind)).Scan(&plan.ID, &plan.UserID, &kindStr, &dataJSON, &plan.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	plan.Kind = Kind(kindStr)
	if err := json.Unmarshal(dataJSON, &plan.Data); err != nil {
		return nil, fmt.Errorf("unmarshal plan %d: %w", plan.ID, err)
	}
	return &plan, nil
}
