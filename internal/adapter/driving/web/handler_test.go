package web

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ericfisherdev/sustainhub/internal/application"
	"github.com/ericfisherdev/sustainhub/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAssessmentStore struct {
	assessments []model.Assessment
	err         error
}

func (m *mockAssessmentStore) Add(_ context.Context, a model.Assessment) (model.Assessment, error) {
	return a, m.err
}

func (m *mockAssessmentStore) GetByID(_ context.Context, _ int64) (model.Assessment, error) {
	return model.Assessment{}, m.err
}

func (m *mockAssessmentStore) ListAll(_ context.Context) ([]model.Assessment, error) {
	return m.assessments, m.err
}

func (m *mockAssessmentStore) ListByDate(_ context.Context, date string) ([]model.Assessment, error) {
	var result []model.Assessment
	for _, a := range m.assessments {
		if a.Date == date {
			result = append(result, a)
		}
	}
	return result, m.err
}

func setupMux(store *mockAssessmentStore) *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(application.NewAssessmentService(store), "Social Sustainability Assessments", logger)
	mux := http.NewServeMux()
	RegisterRoutes(mux, h)
	return mux
}

func get(t *testing.T, mux http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestIndex_RedirectsToAssessments(t *testing.T) {
	rec := get(t, setupMux(&mockAssessmentStore{}), "/")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, listPath, rec.Header().Get("Location"))
}

func TestAssessments_RendersTable(t *testing.T) {
	rec := get(t, setupMux(&mockAssessmentStore{assessments: sampleAssessments()}), listPath)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "<!doctype html>")
	assert.Contains(t, body, `<h3 class="table-title">Social Sustainability Assessments</h3>`)
	assert.Equal(t, 5, strings.Count(body, "<tr data-assessment-id="))
	assert.Contains(t, body, "Supplier#1")
	assert.Contains(t, body, "Customer")
	assert.Contains(t, body, "March 2026")

	// Highest id first.
	assert.Less(t, strings.Index(body, `data-assessment-id="5"`), strings.Index(body, `data-assessment-id="1"`))
}

func TestAssessments_EmptyRendersHeaderOnly(t *testing.T) {
	rec := get(t, setupMux(&mockAssessmentStore{}), listPath)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<th class="assess">Assessment</th>`)
	assert.Contains(t, body, "<tbody></tbody>")
	assert.NotContains(t, body, "data-assessment-id")
}

func TestAssessments_StoreError(t *testing.T) {
	rec := get(t, setupMux(&mockAssessmentStore{err: errors.New("db down")}), listPath)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAssessmentDetail_ShowsRecordsForDate(t *testing.T) {
	store := &mockAssessmentStore{assessments: sampleAssessments()}
	store.assessments[4].Notes = "Working hours **compliant**"

	target := detailPath + "?" + url.Values{"date": {"2026-03-15 14:20:00"}}.Encode()
	rec := get(t, setupMux(store), target)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Assessments added 2026-03-15 14:20:00")
	assert.Equal(t, 1, strings.Count(body, `class="detail-card"`))
	assert.Contains(t, body, "Company")
	assert.Contains(t, body, "<strong>compliant</strong>")
}

func TestAssessmentDetail_NoDate(t *testing.T) {
	rec := get(t, setupMux(&mockAssessmentStore{assessments: sampleAssessments()}), detailPath)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No assessment selected.")
}

func TestAssessmentDetail_UnknownDate(t *testing.T) {
	rec := get(t, setupMux(&mockAssessmentStore{assessments: sampleAssessments()}), detailPath+"?date=1999")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No assessments were added at this date.")
}

func TestStaticAssets_Served(t *testing.T) {
	rec := get(t, setupMux(&mockAssessmentStore{}), "/static/app.css")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".assess-table")
}
