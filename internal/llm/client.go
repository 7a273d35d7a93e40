package llm

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/physiq/internal/telemetry/metrics"
	"github.com/2beens/physiq/internal/telemetry/tracing"

	"github.com/cenkalti/backoff/v5"
	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultMaxAttempts    = 3
	DefaultInitialBackoff = 2 * time.Second
)

var ErrEmptyReply = errors.New("empty reply from model")

type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the OpenAI endpoint, e.g. for a proxy or tests.
	BaseURL          string
	AzureEndpoint   string
	AzureAPIVersion string
	Temperature     float32
	MaxTokens       int
	Timeout         time.Duration
	MaxAttempts     uint
	InitialBackoff  time.Duration
}

type Client struct {
	api            *openai.Client
	model          string
	temperature    float32
	maxTokens      int
	maxAttempts    uint
	initialBackoff time.Duration
	metricsManager *metrics.Manager
}

func NewClient(cfg Config, metricsManager *metrics.Manager) *Client {
	var apiConfig openai.ClientConfig
	if cfg.AzureEndpoint != "" {
		apiConfig = openai.DefaultAzureConfig(cfg.APIKey, cfg.AzureEndpoint)
		if cfg.AzureAPIVersion != "" {
			apiConfig.APIVersion = cfg.AzureAPIVersion
		}
	} else {
		apiConfig = openai.DefaultConfig(cfg.APIKey)
	}
	if cfg.BaseURL != "" {
		apiConfig.BaseURL = cfg.BaseURL
	}

	apiConfig.HTTPClient = &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	c := &Client{
		api:            openai.NewClientWithConfig(apiConfig),
		model:          cfg.Model,
		temperature:    cfg.Temperature,
		maxTokens:      cfg.MaxTokens,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		metricsManager: metricsManager,
	}
	if c.maxAttempts == 0 {
		c.maxAttempts = DefaultMaxAttempts
	}
	if c.initialBackoff <= 0 {
		c.initialBackoff = DefaultInitialBackoff
	}
	return c
}

// Complete sends the conversation to the model, retrying transient failures with an
// exponential backoff (base delay doubling per attempt). The reply is parsed as a JSON
// object when possible, otherwise kept as text. Exhausted retries give a *FailedError.
func (c *Client) Complete(ctx context.Context, req Request) (_ *Completion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "llm.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("model", c.model),
		attribute.Int("messages", len(req.Messages)),
	)

	temperature := c.temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	apiReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: temperature,
	}

	begin := time.Now()
	attempts := 0
	operation := func() (*Completion, error) {
		attempts++
		resp, err := c.api.CreateChatCompletion(ctx, apiReq)
		if err != nil {
			if ctx.Err() != nil || !retryable(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if len(resp.Choices) == 0 {
			return nil, backoff.Permanent(ErrEmptyReply)
		}
		return parseCompletion(resp.Choices[0].Message.Content), nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = c.initialBackoff
	expBackoff.RandomizationFactor = 0
	expBackoff.Multiplier = 2

	completion, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxTries(c.maxAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warnf("llm: attempt %d/%d failed: %s, retrying in %s", attempts, c.maxAttempts, err, next)
			if c.metricsManager != nil {
				c.metricsManager.CounterLLMRetries.Inc()
			}
		}),
	)
	c.observe(begin, err)
	span.SetAttributes(attribute.Int("attempts", attempts))
	if err != nil {
		log.Errorf("llm: request failed after %d attempts: %s", attempts, err)
		return nil, &FailedError{Attempts: attempts, Err: err}
	}
	return completion, nil
}

func (c *Client) observe(begin time.Time, err error) {
	if c.metricsManager == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "failed"
	}
	c.metricsManager.CounterLLMRequests.WithLabelValues(result).Inc()
	c.metricsManager.HistogramLLMDuration.Observe(time.Since(begin).Seconds())
}

// retryable reports whether another attempt could succeed. Rate limits, server
// errors and transport failures are retried, other client errors are not.
func retryable(err error) bool {
	statusCode := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		statusCode = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		statusCode = reqErr.HTTPStatusCode
	}

	if statusCode == 0 {
		return true
	}
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
