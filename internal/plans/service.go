package plans

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/physiq/internal/llm"
	"github.com/2beens/physiq/internal/telemetry/metrics"
	"github.com/2beens/physiq/internal/telemetry/tracing"
	"github.com/2beens/physiq/internal/users"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=plans_test

type plansRepo interface {
	Add(ctx context.Context, userID int, kind Kind, doc Document) (*Plan, error)
	Latest(ctx context.Context, userID int, kind Kind) (*Plan, error)
}

type completer interface {
	Complete(ctx context.Context, req llm.Request) (*llm.Completion, error)
}

type profileProvider interface {
	Profile(ctx context.Context, userID int) (*users.Profile, error)
}

type Service struct {
	repo           plansRepo
	llmClient      completer
	profiles       profileProvider
	metricsManager *metrics.Manager
}

func NewService(
	repo plansRepo,
	llmClient completer,
	profiles profileProvider,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		llmClient:      llmClient,
		profiles:       profiles,
		metricsManager: metricsManager,
	}
}

func (s *Service) Latest(ctx context.Context, userID int, kind Kind) (*Plan, error) {
	return s.repo.Latest(ctx, userID, kind)
}

// Generate asks the model for a new plan built from the user profile and stores it.
// Model failures come back wrapped in ErrGenerateFailed, replies without a week_plan
// list in ErrMalformedPlan.
func (s *Service) Generate(ctx context.Context, userID int, kind Kind, req GenerateRequest) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("kind", string(kind)),
	)

	result := "ok"
	defer func() {
		if s.metricsManager != nil {
			s.metricsManager.CounterPlansGenerated.WithLabelValues(string(kind), result).Inc()
		}
	}()

	profile, err := s.profiles.Profile(ctx, userID)
	if err != nil {
		result = "error"
		return nil, fmt.Errorf("get profile: %w", err)
	}

	completion, err := s.llmClient.Complete(ctx, llm.UserRequest(
		SystemMessage(kind),
		BuildPrompt(kind, *profile, req),
	))
	if err != nil {
		result = "llm_failed"
		return nil, fmt.Errorf("%w: %w", ErrGenerateFailed, err)
	}

	doc := Document(completion.JSON)
	if err := doc.validate(); err != nil {
		result = "malformed"
		log.Warnf("plans: malformed %s plan for user %d: %s", kind, userID, err)
		return nil, err
	}

	plan, err := s.repo.Add(ctx, userID, kind, doc)
	if err != nil {
		result = "error"
		return nil, fmt.Errorf("store plan: %w", err)
	}
	return plan, nil
}

// LatestOrGenerate returns the latest plan, generating a first one when the user has none.
func (s *Service) LatestOrGenerate(ctx context.Context, userID int, kind Kind) (_ *Plan, generated bool, err error) {
	plan, err := s.repo.Latest(ctx, userID, kind)
	if err == nil {
		return plan, false, nil
	}
	if !errors.Is(err, ErrPlanNotFound) {
		return nil, false, fmt.Errorf("get latest plan: %w", err)
	}

	plan, err = s.Generate(ctx, userID, kind, GenerateRequest{})
	if err != nil {
		return nil, false, err
	}
	return plan, true, nil
}
