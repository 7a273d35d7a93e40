package coach

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/physiq/internal/llm"
	"github.com/2beens/physiq/internal/telemetry/metrics"
	"github.com/2beens/physiq/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// FallbackBanner is served whenever a personalized message cannot be produced.
const FallbackBanner = "Focus on consistency today — progress compounds."

const keyDateLayout = "2006-01-02"

//go:generate mockgen -source=$GOFILE -destination=banner_mocks_test.go -package=coach_test

type generator interface {
	Complete(ctx context.Context, req llm.Request) (*llm.Completion, error)
}

// Coach hands out one banner per user per local calendar day.
type Coach struct {
	store          Store
	generator      generator
	loc            *time.Location
	metricsManager *metrics.Manager

	// Now can be replaced in tests
	Now func() time.Time
}

func NewCoach(store Store, generator generator, loc *time.Location, metricsManager *metrics.Manager) *Coach {
	if loc == nil {
		loc = time.UTC
	}
	return &Coach{
		store:          store,
		generator:      generator,
		loc:            loc,
		metricsManager: metricsManager,
		Now:            time.Now,
	}
}

func Key(userID int, localDay time.Time) string {
	return fmt.Sprintf("coach_summary:%d:%s", userID, localDay.Format(keyDateLayout))
}

// UntilMidnight returns the time left until the next midnight in now's location,
// rounded up to whole seconds and at least 1s.
func UntilMidnight(now time.Time) time.Duration {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	ttl := (midnight.Sub(now) + time.Second - 1).Truncate(time.Second)
	if ttl < time.Second {
		return time.Second
	}
	return ttl
}

// Banner never fails: cache and generator problems end up in the logs and the
// fallback message is returned (and cached) instead.
func (c *Coach) Banner(ctx context.Context, userID int, in BannerInput) string {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coach.banner")
	defer span.End()

	now := c.Now().In(c.loc)
	key := Key(userID, now)
	span.SetAttributes(attribute.String("key", key))

	cached, ok, err := c.store.Get(ctx, key)
	if err != nil {
		log.Warnf("coach: get banner %s: %s", key, err)
		c.count("cache_error")
	} else if ok {
		c.count("hit")
		return cached
	}

	banner := c.generate(ctx, userID, in)

	if err := c.store.Set(ctx, key, banner, UntilMidnight(now)); err != nil {
		log.Warnf("coach: store banner %s: %s", key, err)
		c.count("cache_error")
	}
	return banner
}

func (c *Coach) generate(ctx context.Context, userID int, in BannerInput) string {
	completion, err := c.generator.Complete(ctx, llm.UserRequest(summarySystemMessage, buildSummaryPrompt(in)))
	if err != nil {
		log.Errorf("coach: generate banner for user %d: %s", userID, err)
		c.count("fallback")
		return FallbackBanner
	}
	if completion == nil || completion.IsJSON() || strings.TrimSpace(completion.Text) == "" {
		log.Warnf("coach: unusable banner reply for user %d", userID)
		c.count("fallback")
		return FallbackBanner
	}

	c.count("generated")
	return strings.TrimSpace(completion.Text)
}

func (c *Coach) count(outcome string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterCoachBanner.WithLabelValues(outcome).Inc()
	}
}
