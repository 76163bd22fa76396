package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ericfisherdev/sustainhub/internal/domain/model"
	"github.com/ericfisherdev/sustainhub/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.AssessmentStore = (*AssessmentRepo)(nil)

const assessmentColumns = `id, account, month, year, date, notes, created_at`

// AssessmentRepo is the SQLite implementation of the AssessmentStore port.
type AssessmentRepo struct {
	db *DB
}

// NewAssessmentRepo creates a new AssessmentRepo backed by the given DB.
func NewAssessmentRepo(db *DB) *AssessmentRepo {
	return &AssessmentRepo{db: db}
}

// Add inserts a new assessment and returns it with ID and CreatedAt set.
func (r *AssessmentRepo) Add(ctx context.Context, a model.Assessment) (model.Assessment, error) {
	const query = `INSERT INTO assessments (account, month, year, date, notes, created_at) VALUES (?, ?, ?, ?, ?, ?)`

	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	createdAt = createdAt.UTC().Truncate(time.Second)

	result, err := r.db.Writer.ExecContext(ctx, query,
		a.Account, a.Month, a.Year, a.Date, a.Notes, createdAt.Format(time.RFC3339))
	if err != nil {
		return model.Assessment{}, fmt.Errorf("add assessment for %s: %w", a.Account, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Assessment{}, fmt.Errorf("read assessment id: %w", err)
	}

	a.ID = id
	a.CreatedAt = createdAt
	return a, nil
}

// GetByID returns the assessment with the given ID, or ErrAssessmentNotFound.
func (r *AssessmentRepo) GetByID(ctx context.Context, id int64) (model.Assessment, error) {
	const query = `SELECT ` + assessmentColumns + ` FROM assessments WHERE id = ?`

	a, err := scanAssessment(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Assessment{}, fmt.Errorf("get assessment %d: %w", id, driven.ErrAssessmentNotFound)
	}
	if err != nil {
		return model.Assessment{}, fmt.Errorf("get assessment %d: %w", id, err)
	}

	return a, nil
}

// ListAll returns every assessment ordered by id descending.
func (r *AssessmentRepo) ListAll(ctx context.Context) ([]model.Assessment, error) {
	const query = `SELECT ` + assessmentColumns + ` FROM assessments ORDER BY id DESC`
	return r.list(ctx, "list assessments", query)
}

// ListByDate returns the assessments whose date equals date exactly,
// ordered by id descending.
func (r *AssessmentRepo) ListByDate(ctx context.Context, date string) ([]model.Assessment, error) {
	const query = `SELECT ` + assessmentColumns + ` FROM assessments WHERE date = ? ORDER BY id DESC`
	return r.list(ctx, "list assessments by date", query, date)
}

func (r *AssessmentRepo) list(ctx context.Context, op, query string, args ...any) ([]model.Assessment, error) {
	rows, err := r.db.Reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []model.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assessments: %w", err)
	}

	return result, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAssessment(s scanner) (model.Assessment, error) {
	var a model.Assessment
	var createdAt string

	if err := s.Scan(&a.ID, &a.Account, &a.Month, &a.Year, &a.Date, &a.Notes, &createdAt); err != nil {
		return model.Assessment{}, err
	}

	t, err := parseTime(createdAt)
	if err != nil {
		return model.Assessment{}, fmt.Errorf("parse created_at: %w", err)
	}
	a.CreatedAt = t

	return a, nil
}

// parseTime tries the datetime layouts SQLite and this package produce.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
		time.RFC3339Nano,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
