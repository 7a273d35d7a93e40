package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/physiq/internal/auth"
	"github.com/2beens/physiq/internal/llm"
	"github.com/2beens/physiq/internal/telemetry/tracing"
	"github.com/2beens/physiq/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=chat_test

type chatService interface {
	Send(ctx context.Context, userID int, text string) (*Message, error)
	History(ctx context.Context, userID int) ([]Message, error)
}

type Handler struct {
	service chatService
}

func NewHandler(service chatService) *Handler {
	return &Handler{
		service: service,
	}
}

type SendRequest struct {
	Message string `json:"message"`
}

type SendResponse struct {
	Response string `json:"response"`
}

type HistoryResponse struct {
	Messages []Message `json:"messages"`
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", h.HandleSend).Methods("POST").Name("chat-send")
	router.HandleFunc("/history", h.HandleHistory).Methods("GET").Name("chat-history")
}

// HandleSend accepts the message as JSON or as a form field.
func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.send")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req SendRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("chat, unmarshal json params: %s", err)
			pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("chat, parse form: %s", err)
			pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		req.Message = r.Form.Get("message")
	}

	msg, err := h.service.Send(ctx, userID, req.Message)
	if err != nil {
		var failedErr *llm.FailedError
		switch {
		case errors.Is(err, ErrEmptyMessage):
			pkg.WriteJSONError(w, "Empty message", http.StatusBadRequest)
		case errors.Is(err, ErrMessageTooLong):
			pkg.WriteJSONError(w, "Message too long", http.StatusBadRequest)
		case errors.As(err, &failedErr), errors.Is(err, ErrReplyFailed):
			log.Errorf("chat for user %d: %s", userID, err)
			pkg.WriteJSONError(w, ErrReplyFailed.Error(), http.StatusBadGateway)
		default:
			log.Errorf("chat for user %d: %s", userID, err)
			pkg.WriteJSONError(w, ErrReplyFailed.Error(), http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, SendResponse{Response: msg.Response}, http.StatusOK)
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.history")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	messages, err := h.service.History(ctx, userID)
	if err != nil {
		log.Errorf("get chat history for user %d: %s", userID, err)
		http.Error(w, "get chat history failed", http.StatusInternalServerError)
		return
	}
	if messages == nil {
		messages = []Message{}
	}

	pkg.WriteJSON(w, HistoryResponse{Messages: messages}, http.StatusOK)
}
