package plans

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/2beens/physiq/internal/auth"
	"github.com/2beens/physiq/internal/llm"
	"github.com/2beens/physiq/internal/telemetry/tracing"
	"github.com/2beens/physiq/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plans_test

type plansService interface {
	Generate(ctx context.Context, userID int, kind Kind, req GenerateRequest) (*Plan, error)
	LatestOrGenerate(ctx context.Context, userID int, kind Kind) (*Plan, bool, error)
}

type Handler struct {
	service plansService
}

func NewHandler(service plansService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/{kind}/latest", h.HandleLatest).Methods("GET").Name("plans-latest")
	router.HandleFunc("/{kind}", h.HandleGenerate).Methods("POST").Name("plans-generate")
}

func (h *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.latest")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	kind, err := ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, generated, err := h.service.LatestOrGenerate(ctx, userID, kind)
	if err != nil {
		writeServiceError(w, userID, kind, err)
		return
	}

	status := http.StatusOK
	if generated {
		status = http.StatusCreated
	}
	pkg.WriteJSON(w, plan, status)
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.generate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	kind, err := ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// the body is optional, an empty one asks for a plan from the profile alone
	var req GenerateRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			log.Errorf("generate plan, unmarshal json params: %s", err)
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	plan, err := h.service.Generate(ctx, userID, kind, req)
	if err != nil {
		writeServiceError(w, userID, kind, err)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusCreated)
}

func writeServiceError(w http.ResponseWriter, userID int, kind Kind, err error) {
	var failedErr *llm.FailedError
	switch {
	case errors.As(err, &failedErr):
		log.Errorf("generate %s plan for user %d: %s", kind, userID, err)
		pkg.WriteJSON(w, failedErr.Payload(), http.StatusBadGateway)
	case errors.Is(err, ErrGenerateFailed), errors.Is(err, ErrMalformedPlan):
		log.Errorf("generate %s plan for user %d: %s", kind, userID, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusBadGateway)
	default:
		log.Errorf("get %s plan for user %d: %s", kind, userID, err)
		http.Error(w, "get plan failed", http.StatusInternalServerError)
	}
}
