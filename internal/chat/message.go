package chat

import (
	"errors"
	"time"
)

const (
	// ContextExchanges is how many earlier exchanges the model sees with a new message.
	ContextExchanges = 10
	HistoryLimit     = 50
	MaxMessageLength = 4000
)

var (
	ErrEmptyMessage   = errors.New("empty message")
	ErrMessageTooLong = errors.New("message too long")
	ErrReplyFailed    = errors.New("failed to get AI response")
)

// Message is one exchange: what the user sent and what the coach answered.
type Message struct {
	ID        int       `json:"id"`
	UserID    int       `json:"-"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}
