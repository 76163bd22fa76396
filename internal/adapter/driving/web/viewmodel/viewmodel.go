// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// AssessmentRow holds presentation-ready data for one row of the
// assessment table.
type AssessmentRow struct {
	ID           int64
	AccountLabel string
	Period       string
	Date         string
	DetailPath   string // fixed detail route carrying Date as the date query param
}

// AssessmentDetail holds presentation-ready data for one assessment on the
// detail page.
type AssessmentDetail struct {
	ID           int64
	Account      string
	AccountLabel string
	Period       string
	Date         string
	NotesHTML    string
}

// AssessmentDetailPage holds all data needed to render the detail page.
type AssessmentDetailPage struct {
	Date        string
	Assessments []AssessmentDetail
	BackPath    string
}
