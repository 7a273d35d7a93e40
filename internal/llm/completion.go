package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Request struct {
	System   string
	Messages []Message
	// nil means the configured default
	Temperature *float32
}

// UserRequest is a single user prompt under a system message.
func UserRequest(system, prompt string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	}
}

// Completion holds the model reply. JSON is set when the reply is a JSON object.
type Completion struct {
	Text string
	JSON map[string]any
}

func (c *Completion) IsJSON() bool {
	return c != nil && c.JSON != nil
}

// FailedError is returned once all attempts are used up, or the failure is not retryable.
type FailedError struct {
	Attempts int
	Err      error
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("AI request failed after %d attempts: %s", e.Attempts, e.Err)
}

func (e *FailedError) Unwrap() error {
	return e.Err
}

// Payload renders the failure the way API clients expect it.
func (e *FailedError) Payload() map[string]string {
	return map[string]string{"error": e.Error()}
}

func parseCompletion(content string) *Completion {
	text := strings.TrimSpace(content)
	completion := &Completion{Text: text}

	raw := stripCodeFence(text)
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err == nil && obj != nil {
		completion.JSON = obj
	}
	return completion
}

// models sometimes wrap JSON in a markdown fence despite being told not to
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
