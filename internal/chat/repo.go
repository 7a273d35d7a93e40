package chat

import (
	"context"

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

func (r *Repo) Add(ctx context.Context, userID int, message, response string) (_ *Message, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.chat.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	msg := &Message{
		UserID:   userID,
		Message:  message,
		Response: response,
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO chat_message (user_id, message, response)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, userID, message, response).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// Recent returns up to limit latest messages, newest first.
func (r *Repo) Recent(ctx context.Context, userID int, limit int) (_ []Message, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.chat.recent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("limit", limit),
	)

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, message, response, created_at
		FROM chat_message
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}

	return rows2messages(rows)
}

func rows2messages(rows pgx.Rows) ([]Message, error) {
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.Message, &m.Response, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}
