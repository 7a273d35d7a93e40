package users

import (
	"context"
	"errors"

	"github.com/2beens/physiq/internal/telemetry/tracing"
	"github.com/2beens/physiq/pkg"

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

func (r *Repo) CreateUser(ctx context.Context, username, passwordHash string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user := &User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO app_user (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, username, passwordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

func (r *Repo) GetUserByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getbyusername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user := &User{}
	err = r.db.QueryRow(ctx, `
		SELECT id, username, password_hash, created_at
		FROM app_user
		WHERE username = $1
	`, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *Repo) GetUser(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", id))

	user := &User{}
	err = r.db.QueryRow(ctx, `
		SELECT id, username, password_hash, created_at
		FROM app_user
		WHERE id = $1
	`, id).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *Repo) GetProfile(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	p := &Profile{}
	var schedule []byte
	err = r.db.QueryRow(ctx, `
		SELECT user_id, age, height, weight, gender, fitness_goal, activity_level,
		       dietary_preferences, allergies, schedule, updated_at
		FROM user_profile
		WHERE user_id = $1
	`, userID).Scan(
		&p.UserID, &p.Age, &p.Height, &p.Weight, &p.Gender, &p.FitnessGoal, &p.ActivityLevel,
		&p.DietaryPreferences, &p.Allergies, &schedule, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	p.Schedule = schedule
	return p, nil
}

func (r *Repo) UpsertProfile(ctx context.Context, p Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.profile.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", p.UserID))

	var schedule []byte
	if len(p.Schedule) > 0 {
		schedule = p.Schedule
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO user_profile (user_id, age, height, weight, gender, fitness_goal, activity_level,
		                          dietary_preferences, allergies, schedule)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			age = EXCLUDED.age,
			height = EXCLUDED.height,
			weight = EXCLUDED.weight,
			gender = EXCLUDED.gender,
			fitness_goal = EXCLUDED.fitness_goal,
			activity_level = EXCLUDED.activity_level,
			dietary_preferences = EXCLUDED.dietary_preferences,
			allergies = EXCLUDED.allergies,
			schedule = EXCLUDED.schedule,
			updated_at = now()
		RETURNING updated_at
	`,
		p.UserID, p.Age, p.Height, p.Weight, p.Gender, p.FitnessGoal, p.ActivityLevel,
		p.DietaryPreferences, p.Allergies, schedule,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
