// Package application holds the use cases that sit between the driving
// adapters and the persistence ports.
package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ericfisherdev/sustainhub/internal/domain/model"
	"github.com/ericfisherdev/sustainhub/internal/domain/port/driven"
)

// ErrInvalidAssessment is wrapped by Record when the submitted fields fail
// validation.
var ErrInvalidAssessment = errors.New("invalid assessment")

// DateLayout is the format used for assessment dates when none is supplied.
const DateLayout = "2006-01-02 15:04:05"

// NewAssessment holds the caller-supplied fields of an assessment to record.
type NewAssessment struct {
	Account string
	Month   string
	Year    int
	Date    string
	Notes   string
}

// AssessmentService reads and records sustainability assessments.
type AssessmentService struct {
	store driven.AssessmentStore
	now   func() time.Time
}

// NewAssessmentService creates an AssessmentService backed by store.
func NewAssessmentService(store driven.AssessmentStore) *AssessmentService {
	return &AssessmentService{store: store, now: time.Now}
}

// List returns all stored assessments.
func (s *AssessmentService) List(ctx context.Context) ([]model.Assessment, error) {
	assessments, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	return assessments, nil
}

// ListByDate returns the assessments added at exactly the given date.
// An empty date matches nothing.
func (s *AssessmentService) ListByDate(ctx context.Context, date string) ([]model.Assessment, error) {
	if date == "" {
		return []model.Assessment{}, nil
	}

	assessments, err := s.store.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list assessments for %q: %w", date, err)
	}
	return assessments, nil
}

// Record validates in and stores it as a new assessment. When in.Date is
// empty the current UTC time is used.
func (s *AssessmentService) Record(ctx context.Context, in NewAssessment) (model.Assessment, error) {
	account := strings.TrimSpace(in.Account)
	month := strings.TrimSpace(in.Month)

	if !common.IsHexAddress(account) {
		return model.Assessment{}, fmt.Errorf("%w: account %q is not a hex address", ErrInvalidAssessment, account)
	}
	if month == "" {
		return model.Assessment{}, fmt.Errorf("%w: month is required", ErrInvalidAssessment)
	}
	if in.Year <= 0 {
		return model.Assessment{}, fmt.Errorf("%w: year must be positive", ErrInvalidAssessment)
	}

	now := s.now().UTC()
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = now.Format(DateLayout)
	}

	stored, err := s.store.Add(ctx, model.Assessment{
		Account:   account,
		Month:     month,
		Year:      in.Year,
		Date:      date,
		Notes:     in.Notes,
		CreatedAt: now,
	})
	if err != nil {
		return model.Assessment{}, fmt.Errorf("record assessment: %w", err)
	}

	return stored, nil
}
