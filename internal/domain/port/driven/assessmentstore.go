package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/sustainhub/internal/domain/model"
)

// ErrAssessmentNotFound indicates the requested assessment does not exist.
var ErrAssessmentNotFound = errors.New("assessment not found")

// AssessmentStore defines the driven port for assessment persistence.
// Add assigns the ID and CreatedAt of the stored record and returns it.
// GetByID returns ErrAssessmentNotFound if no record has the given ID.
type AssessmentStore interface {
	Add(ctx context.Context, a model.Assessment) (model.Assessment, error)
	GetByID(ctx context.Context, id int64) (model.Assessment, error)
	ListAll(ctx context.Context) ([]model.Assessment, error)
	ListByDate(ctx context.Context, date string) ([]model.Assessment, error)
}
