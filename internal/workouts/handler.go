package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	Finish(ctx context.Context, userID uuid.UUID, req FinishRequest) (*FinishedWorkout, error)
	History(ctx context.Context, userID uuid.UUID, page, size int) ([]FinishedWorkout, int, error)
}

type Handler struct {
	service workoutsService
	metrics *metrics.Manager
}

func NewHandler(service workoutsService, metrics *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metrics,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts/finish", h.HandleFinish).Methods("POST", "OPTIONS").Name("workouts-finish")
	r.HandleFunc("/workouts/history/page/{page}/size/{size}", h.HandleHistory).Methods("GET", "OPTIONS").Name("workouts-history")
}

func (h *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.finish")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req FinishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("finish workout, unmarshal json params: %s", err)
		http.Error(w, "finish workout failed, invalid body", http.StatusBadRequest)
		return
	}

	workout, err := h.service.Finish(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrProgressNotSaved):
			log.Errorf("finish workout for user [%s], progress not updated: %s", userID, err)
			http.Error(w, "workout saved, but daily progress update failed", http.StatusInternalServerError)
		default:
			log.Errorf("finish workout for user [%s]: %s", userID, err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.metrics.CounterWorkoutsFinished.Inc()
	log.Debugf("workout [%d] finished by user [%s], volume: %.1f", workout.ID, userID, workout.Volume)

	respJson, err := json.Marshal(FinishResponse{
		Message: "workout saved, progress updated",
		ID:      workout.ID,
	})
	if err != nil {
		log.Errorf("marshal finish workout response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.history")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil || page < 1 {
		http.Error(w, "invalid page (has to be a positive number)", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil || size < 1 || size > 100 {
		http.Error(w, "invalid size (has to be between 1 and 100)", http.StatusBadRequest)
		return
	}
	if page > math.MaxInt/size {
		http.Error(w, "invalid page (too large)", http.StatusBadRequest)
		return
	}

	workouts, total, err := h.service.History(ctx, userID, page, size)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("workout history for user [%s]: %s", userID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if workouts == nil {
		workouts = []FinishedWorkout{}
	}

	respJson, err := json.Marshal(HistoryResponse{
		Workouts: workouts,
		Total:    total,
	})
	if err != nil {
		log.Errorf("marshal workout history: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
