package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/sustainhub/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// AssessmentResponse is the JSON representation of an assessment.
type AssessmentResponse struct {
	ID           int64  `json:"id"`
	Account      string `json:"account"`
	AccountLabel string `json:"account_label"`
	Month        string `json:"month"`
	Year         int    `json:"year"`
	Period       string `json:"period"`
	Date         string `json:"date"`
	Notes        string `json:"notes"`
	CreatedAt    string `json:"created_at"`
}

// AddAssessmentRequest is the JSON body for the record assessment endpoint.
type AddAssessmentRequest struct {
	Account string `json:"account"`
	Month   string `json:"month"`
	Year    int    `json:"year"`
	Date    string `json:"date"`
	Notes   string `json:"notes"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toAssessmentResponse converts a domain Assessment to its JSON representation.
func toAssessmentResponse(a model.Assessment) AssessmentResponse {
	return AssessmentResponse{
		ID:           a.ID,
		Account:      a.Account,
		AccountLabel: model.AccountLabel(a.Account),
		Month:        a.Month,
		Year:         a.Year,
		Period:       a.Period(),
		Date:         a.Date,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
