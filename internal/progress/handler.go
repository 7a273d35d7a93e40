package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/physiq/internal/auth"
	"github.com/2beens/physiq/internal/telemetry/tracing"
	"github.com/2beens/physiq/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type progressService interface {
	UpdateStatus(ctx context.Context, userID int, date time.Time, workout *WorkoutStatus, nutrition *NutritionStatus) (*Outcome, *StreakResult, error)
	SaveNote(ctx context.Context, userID int, date time.Time, note string) (*Outcome, error)
	Streaks(ctx context.Context, userID int) (*StreakResult, error)
	Week(ctx context.Context, userID int) ([]WeekDay, error)
}

type UpdateStatusRequest struct {
	Date            string `json:"date"`
	WorkoutStatus   string `json:"workout_status,omitempty"`
	NutritionStatus string `json:"nutrition_status,omitempty"`
}

type UpdateStatusResponse struct {
	Success         bool            `json:"success"`
	WorkoutStatus   WorkoutStatus   `json:"workout_status"`
	NutritionStatus NutritionStatus `json:"nutrition_status"`
	Streaks         StreakResult    `json:"streaks"`
}

type SaveNoteRequest struct {
	Date  string `json:"date"`
	Notes string `json:"notes"`
}

type SaveNoteResponse struct {
	Success bool   `json:"success"`
	Notes   string `json:"notes"`
}

type WeekResponse struct {
	Week    []WeekDay    `json:"week"`
	Streaks StreakResult `json:"streaks"`
}

type Handler struct {
	service progressService
}

func NewHandler(service progressService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/update", h.HandleUpdateStatus).Methods("POST").Name("progress-update")
	router.HandleFunc("/note", h.HandleSaveNote).Methods("POST").Name("progress-note")
	router.HandleFunc("/week", h.HandleWeek).Methods("GET").Name("progress-week")
	router.HandleFunc("/streaks", h.HandleStreaks).Methods("GET").Name("progress-streaks")
}

func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update progress, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	workout, err := ParseWorkoutStatus(req.WorkoutStatus)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	nutrition, err := ParseNutritionStatus(req.NutritionStatus)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	outcome, streaks, err := h.service.UpdateStatus(ctx, userID, date, workout, nutrition)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("update progress for user %d: %s", userID, err)
		http.Error(w, "update progress failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, UpdateStatusResponse{
		Success:         true,
		WorkoutStatus:   outcome.WorkoutStatus,
		NutritionStatus: outcome.NutritionStatus,
		Streaks:         *streaks,
	}, http.StatusOK)
}

func (h *Handler) HandleSaveNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.note")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SaveNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("save note, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	outcome, err := h.service.SaveNote(ctx, userID, date, req.Notes)
	if err != nil {
		log.Errorf("save note for user %d: %s", userID, err)
		http.Error(w, "save note failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, SaveNoteResponse{
		Success: true,
		Notes:   outcome.Notes,
	}, http.StatusOK)
}

func (h *Handler) HandleStreaks(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.streaks")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	streaks, err := h.service.Streaks(ctx, userID)
	if err != nil {
		log.Errorf("get streaks for user %d: %s", userID, err)
		http.Error(w, "get streaks failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, streaks, http.StatusOK)
}

func (h *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.week")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	week, err := h.service.Week(ctx, userID)
	if err != nil {
		log.Errorf("get week progress for user %d: %s", userID, err)
		http.Error(w, "get week progress failed", http.StatusInternalServerError)
		return
	}
	streaks, err := h.service.Streaks(ctx, userID)
	if err != nil {
		log.Errorf("get streaks for user %d: %s", userID, err)
		http.Error(w, "get week progress failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, WeekResponse{
		Week:    week,
		Streaks: *streaks,
	}, http.StatusOK)
}
