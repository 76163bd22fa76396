// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/sustainhub/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/sustainhub/internal/adapter/driving/web/templates/pages"
	"github.com/ericfisherdev/sustainhub/internal/application"
)

const appName = "Sustainability Analytics"

// Handler is the web GUI driving adapter that serves HTML via templ components.
type Handler struct {
	assessmentSvc *application.AssessmentService
	tableTitle    string
	logger        *slog.Logger
}

// NewHandler creates a Handler. tableTitle is the heading shown above the
// assessment table.
func NewHandler(assessmentSvc *application.AssessmentService, tableTitle string, logger *slog.Logger) *Handler {
	return &Handler{
		assessmentSvc: assessmentSvc,
		tableTitle:    tableTitle,
		logger:        logger,
	}
}

// Index redirects the site root to the assessment table.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, listPath, http.StatusSeeOther)
}

// Assessments renders the assessment table page.
func (h *Handler) Assessments(w http.ResponseWriter, r *http.Request) {
	assessments, err := h.assessmentSvc.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list assessments", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, h.tableTitle, pages.Assessments(h.tableTitle, assessmentRows(assessments)))
}

// AssessmentDetail renders the assessments added at the date carried by the
// clicked row's link.
func (h *Handler) AssessmentDetail(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	assessments, err := h.assessmentSvc.ListByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("failed to list assessments by date", "date", date, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "Assessment", pages.AssessmentDetail(toAssessmentDetailPage(date, assessments)))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, title string, content templ.Component) {
	layout := templates.Layout(title+" | "+appName, content)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layout.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "title", title, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
