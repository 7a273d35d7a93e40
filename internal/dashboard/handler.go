package dashboard

import (
	"context"
	"net/http"

	"github.com/2beens/physiq/internal/auth"
	"github.com/2beens/physiq/internal/telemetry/tracing"
	"github.com/2beens/physiq/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type overviewService interface {
	Overview(ctx context.Context, userID int) (*Overview, error)
}

type Handler struct {
	service overviewService
}

func NewHandler(service overviewService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/overview", h.HandleOverview).Methods("GET").Name("dashboard-overview")
}

func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.overview")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	overview, err := h.service.Overview(ctx, userID)
	if err != nil {
		log.Errorf("get overview for user %d: %s", userID, err)
		http.Error(w, "get overview failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, overview, http.StatusOK)
}
