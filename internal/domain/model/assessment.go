package model

import (
	"strconv"
	"strings"
	"time"
)

// Assessment is a sustainability evaluation submitted by an account for a
// reporting period.
type Assessment struct {
	ID        int64
	Account   string
	Month     string
	Year      int
	Date      string
	Notes     string
	CreatedAt time.Time
}

// Period returns the reporting period as "Month Year". A missing month or
// year is left out rather than rendered as a placeholder.
func (a Assessment) Period() string {
	parts := make([]string, 0, 2)
	if a.Month != "" {
		parts = append(parts, a.Month)
	}
	if a.Year != 0 {
		parts = append(parts, strconv.Itoa(a.Year))
	}
	return strings.Join(parts, " ")
}
