package progress

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

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type reconciler interface {
	GetOrCreateToday(ctx context.Context, userID uuid.UUID) (*Record, error)
	ApplyWaterDelta(ctx context.Context, userID uuid.UUID, amountMl int) (*Record, error)
	RecordBodyWeight(ctx context.Context, userID uuid.UUID, weight float64) (*Record, error)
	History(ctx context.Context, userID uuid.UUID, page, size int) ([]Record, int, error)
	Delete(ctx context.Context, userID uuid.UUID, id int) error
}

type WaterRequest struct {
	// negative amounts remove water, bounded by MaxWaterDeltaMl
	Amount *int `json:"amount" validate:"required,min=-20000,max=20000"`
}

type WeightRequest struct {
	Weight float64 `json:"weight" validate:"gt=0,lte=700"`
}

type DeleteRecordResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	reconciler reconciler
	metrics    *metrics.Manager
	validate   *validator.Validate
}

func NewHandler(reconciler reconciler, metrics *metrics.Manager) *Handler {
	return &Handler{
		reconciler: reconciler,
		metrics:    metrics,
		validate:   validator.New(),
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/progress/today", h.HandleGetToday).Methods("GET", "OPTIONS").Name("progress-today")
	r.HandleFunc("/progress/water", h.HandleAddWater).Methods("POST", "OPTIONS").Name("progress-water")
	r.HandleFunc("/progress/weight", h.HandleWeight).Methods("POST", "OPTIONS").Name("progress-weight")
	r.HandleFunc("/progress/list/page/{page}/size/{size}", h.HandleList).Methods("GET", "OPTIONS").Name("progress-list")
	r.HandleFunc("/progress/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("progress-delete")
}

func (h *Handler) HandleGetToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.today")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	record, err := h.reconciler.GetOrCreateToday(ctx, userID)
	if err != nil {
		log.Errorf("get today's progress for user [%s]: %s", userID, err)
		writeReconcilerError(w, err)
		return
	}

	writeRecord(w, record)
}

func (h *Handler) HandleAddWater(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.water")
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

	var req WaterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add water, unmarshal json params: %s", err)
		http.Error(w, "add water failed, invalid body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "error, amount missing or out of range", http.StatusBadRequest)
		return
	}

	record, err := h.reconciler.ApplyWaterDelta(ctx, userID, *req.Amount)
	if err != nil {
		log.Errorf("add water [%d ml] for user [%s]: %s", *req.Amount, userID, err)
		writeReconcilerError(w, err)
		return
	}

	h.metrics.CounterWaterUpdates.Inc()
	log.Tracef("water updated for user [%s]: %d ml", userID, record.WaterMl)

	writeRecord(w, record)
}

func (h *Handler) HandleWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.weight")
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

	var req WeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("report weight, unmarshal json params: %s", err)
		http.Error(w, "report weight failed, invalid body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "error, invalid weight", http.StatusBadRequest)
		return
	}

	record, err := h.reconciler.RecordBodyWeight(ctx, userID, req.Weight)
	if err != nil {
		log.Errorf("report weight for user [%s]: %s", userID, err)
		writeReconcilerError(w, err)
		return
	}

	h.metrics.CounterWeightReports.Inc()
	writeRecord(w, record)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.list")
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
	if err != nil || size < 1 || size > 366 {
		http.Error(w, "invalid size (has to be between 1 and 366)", http.StatusBadRequest)
		return
	}
	if page > math.MaxInt/size {
		http.Error(w, "invalid page (too large)", http.StatusBadRequest)
		return
	}

	records, total, err := h.reconciler.History(ctx, userID, page, size)
	if err != nil {
		log.Errorf("list progress for user [%s]: %s", userID, err)
		writeReconcilerError(w, err)
		return
	}
	if records == nil {
		records = []Record{}
	}

	respJson, err := json.Marshal(ListResponse{
		Records: records,
		Total:   total,
	})
	if err != nil {
		log.Errorf("marshal progress records: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := h.reconciler.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "progress record not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete progress record %d for user [%s]: %s", id, userID, err)
		writeReconcilerError(w, err)
		return
	}

	respJson, err := json.Marshal(DeleteRecordResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func writeReconcilerError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func writeRecord(w http.ResponseWriter, record *Record) {
	recordJson, err := json.Marshal(record)
	if err != nil {
		log.Errorf("failed to marshal progress record: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordJson, http.StatusOK)
}
