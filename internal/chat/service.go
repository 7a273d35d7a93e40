package chat

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/2beens/physiq/internal/llm"
	"github.com/2beens/physiq/internal/plans"
	"github.com/2beens/physiq/internal/telemetry/metrics"
	"github.com/2beens/physiq/internal/telemetry/tracing"
	"github.com/2beens/physiq/internal/users"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=chat_test

type chatRepo interface {
	Add(ctx context.Context, userID int, message, response string) (*Message, error)
	Recent(ctx context.Context, userID int, limit int) ([]Message, error)
}

type completer interface {
	Complete(ctx context.Context, req llm.Request) (*llm.Completion, error)
}

type userSource interface {
	User(ctx context.Context, userID int) (*users.User, error)
	Profile(ctx context.Context, userID int) (*users.Profile, error)
}

type planSource interface {
	Latest(ctx context.Context, userID int, kind plans.Kind) (*plans.Plan, error)
}

type Service struct {
	repo           chatRepo
	llmClient      completer
	users          userSource
	plans          planSource
	metricsManager *metrics.Manager
}

func NewService(
	repo chatRepo,
	llmClient completer,
	users userSource,
	plans planSource,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		llmClient:      llmClient,
		users:          users,
		plans:          plans,
		metricsManager: metricsManager,
	}
}

// Send answers the user's message in the context of their profile, latest plans and
// the last exchanges, and stores the new exchange.
func (s *Service) Send(ctx context.Context, userID int, text string) (_ *Message, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.chat.send")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	user, err := s.users.User(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	profile, err := s.users.Profile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	workout, err := s.latestPlan(ctx, userID, plans.KindWorkout)
	if err != nil {
		return nil, err
	}
	nutrition, err := s.latestPlan(ctx, userID, plans.KindNutrition)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.Recent(ctx, userID, ContextExchanges)
	if err != nil {
		return nil, fmt.Errorf("get recent messages: %w", err)
	}

	completion, err := s.llmClient.Complete(ctx, llm.Request{
		System:   buildSystemPrompt(user.Username, profile, workout, nutrition),
		Messages: conversation(recent, text),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReplyFailed, err)
	}
	reply := strings.TrimSpace(completion.Text)
	if reply == "" {
		return nil, fmt.Errorf("%w: %w", ErrReplyFailed, llm.ErrEmptyReply)
	}

	msg, err := s.repo.Add(ctx, userID, text, reply)
	if err != nil {
		return nil, fmt.Errorf("store message: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterChatMessages.Inc()
	}
	return msg, nil
}

// History returns the latest exchanges, oldest first.
func (s *Service) History(ctx context.Context, userID int) ([]Message, error) {
	messages, err := s.repo.Recent(ctx, userID, HistoryLimit)
	if err != nil {
		return nil, err
	}
	slices.Reverse(messages)
	return messages, nil
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

// conversation turns the newest-first exchanges into a chronological message list
// ending with the new user message.
func conversation(recent []Message, text string) []llm.Message {
	messages := make([]llm.Message, 0, len(recent)*2+1)
	for i := len(recent) - 1; i >= 0; i-- {
		messages = append(messages,
			llm.Message{Role: llm.RoleUser, Content: recent[i].Message},
			llm.Message{Role: llm.RoleAssistant, Content: recent[i].Response},
		)
	}
	return append(messages, llm.Message{Role: llm.RoleUser, Content: text})
}
