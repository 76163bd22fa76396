// Package httphandler implements the JSON REST API driving adapter.
package httphandler

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/ericfisherdev/sustainhub/internal/application"
	"github.com/ericfisherdev/sustainhub/internal/domain/model"
)

// maxBodyBytes caps request bodies accepted by the API.
const maxBodyBytes = 1 << 20

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	assessmentSvc *application.AssessmentService
	logger        *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(assessmentSvc *application.AssessmentService, logger *slog.Logger) *Handler {
	return &Handler{
		assessmentSvc: assessmentSvc,
		logger:        logger,
	}
}

// RegisterAPIRoutes registers the /api/v1 routes on mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/assessments", h.ListAssessments)
	mux.HandleFunc("POST /api/v1/assessments", h.AddAssessment)
	mux.HandleFunc("GET /api/v1/health", h.Health)
}

// ListAssessments returns all assessments ordered by id descending.
func (h *Handler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	assessments, err := h.assessmentSvc.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list assessments", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	assessments = slices.Clone(assessments)
	slices.SortFunc(assessments, func(a, b model.Assessment) int {
		return cmp.Compare(b.ID, a.ID)
	})

	resp := make([]AssessmentResponse, 0, len(assessments))
	for _, a := range assessments {
		resp = append(resp, toAssessmentResponse(a))
	}

	writeJSON(w, http.StatusOK, resp)
}

// AddAssessment validates and records a new assessment.
func (h *Handler) AddAssessment(w http.ResponseWriter, r *http.Request) {
	var req AddAssessmentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stored, err := h.assessmentSvc.Record(r.Context(), application.NewAssessment{
		Account: req.Account,
		Month:   req.Month,
		Year:    req.Year,
		Date:    req.Date,
		Notes:   req.Notes,
	})
	if errors.Is(err, application.ErrInvalidAssessment) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("failed to record assessment", "account", req.Account, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("assessment recorded", "id", stored.ID, "account", stored.Account, "date", stored.Date)
	writeJSON(w, http.StatusCreated, toAssessmentResponse(stored))
}

// Health returns a simple liveness response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
