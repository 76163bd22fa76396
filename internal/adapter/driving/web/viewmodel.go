package web

import (
	"cmp"
	"iter"
	"net/url"
	"slices"

	vm "github.com/ericfisherdev/sustainhub/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/sustainhub/internal/domain/model"
)

const (
	// listPath is the assessment table page.
	listPath = "/app/assessments"

	// detailPath is the fixed route every row links to. The clicked row's
	// date travels with the link as the date query parameter.
	detailPath = "/app/social"
)

// assessmentRows yields one row per assessment, ordered by ID descending.
// The input slice is left untouched.
func assessmentRows(assessments []model.Assessment) iter.Seq[vm.AssessmentRow] {
	sorted := newestFirst(assessments)

	return func(yield func(vm.AssessmentRow) bool) {
		for _, a := range sorted {
			if !yield(toAssessmentRow(a)) {
				return
			}
		}
	}
}

func toAssessmentRow(a model.Assessment) vm.AssessmentRow {
	return vm.AssessmentRow{
		ID:           a.ID,
		AccountLabel: model.AccountLabel(a.Account),
		Period:       a.Period(),
		Date:         a.Date,
		DetailPath:   detailURL(a.Date),
	}
}

func toAssessmentDetail(a model.Assessment) vm.AssessmentDetail {
	return vm.AssessmentDetail{
		ID:           a.ID,
		Account:      a.Account,
		AccountLabel: model.AccountLabel(a.Account),
		Period:       a.Period(),
		Date:         a.Date,
		NotesHTML:    RenderMarkdown(a.Notes),
	}
}

func toAssessmentDetailPage(date string, assessments []model.Assessment) vm.AssessmentDetailPage {
	page := vm.AssessmentDetailPage{
		Date:        date,
		Assessments: make([]vm.AssessmentDetail, 0, len(assessments)),
		BackPath:    listPath,
	}
	for _, a := range newestFirst(assessments) {
		page.Assessments = append(page.Assessments, toAssessmentDetail(a))
	}
	return page
}

// newestFirst returns a copy of assessments sorted by ID descending.
func newestFirst(assessments []model.Assessment) []model.Assessment {
	sorted := slices.Clone(assessments)
	slices.SortFunc(sorted, func(a, b model.Assessment) int {
		return cmp.Compare(b.ID, a.ID)
	})
	return sorted
}

func detailURL(date string) string {
	if date == "" {
		return detailPath
	}
	return detailPath + "?" + url.Values{"date": {date}}.Encode()
}
