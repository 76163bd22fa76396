package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/ericfisherdev/sustainhub/internal/domain/model"
	"github.com/ericfisherdev/sustainhub/internal/domain/port/driven"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeAssessment(account, month string, year int, date string) model.Assessment {
	return model.Assessment{
		Account:   account,
		Month:     month,
		Year:      year,
		Date:      date,
		CreatedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestAssessmentRepo_AddAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssessmentRepo(db)
	ctx := context.Background()

	in := makeAssessment("0x3421668462324bFB48EA07D0B12243091CD09759", "March", 2026, "2026-03-01 09:30:00")
	in.Notes = "**ok**"

	added, err := repo.Add(ctx, in)
	require.NoError(t, err)
	assert.NotZero(t, added.ID)

	got, err := repo.GetByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Account, got.Account)
	assert.Equal(t, "March", got.Month)
	assert.Equal(t, 2026, got.Year)
	assert.Equal(t, "2026-03-01 09:30:00", got.Date)
	assert.Equal(t, "**ok**", got.Notes)
	assert.True(t, in.CreatedAt.Equal(got.CreatedAt))
}

func TestAssessmentRepo_Add_DefaultsCreatedAt(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssessmentRepo(db)

	added, err := repo.Add(context.Background(), model.Assessment{Account: "0xabc"})
	require.NoError(t, err)
	assert.False(t, added.CreatedAt.IsZero())
}

func TestAssessmentRepo_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssessmentRepo(db)

	_, err := repo.GetByID(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, driven.ErrAssessmentNotFound)
}

func TestAssessmentRepo_ListAll_IDDescending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssessmentRepo(db)
	ctx := context.Background()

	for _, month := range []string{"January", "February", "March"} {
		_, err := repo.Add(ctx, makeAssessment("0xabc", month, 2026, month))
		require.NoError(t, err)
	}

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "March", list[0].Month)
	assert.Equal(t, "January", list[2].Month)
	assert.Greater(t, list[0].ID, list[1].ID)
	assert.Greater(t, list[1].ID, list[2].ID)
}

func TestAssessmentRepo_ListAll_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssessmentRepo(db)

	list, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAssessmentRepo_ListByDate_ExactMatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssessmentRepo(db)
	ctx := context.Background()

	_, err := repo.Add(ctx, makeAssessment("0xa", "May", 2025, "2025-05-01 10:00:00"))
	require.NoError(t, err)
	_, err = repo.Add(ctx, makeAssessment("0xb", "May", 2025, "2025-05-01 10:00:00"))
	require.NoError(t, err)
	_, err = repo.Add(ctx, makeAssessment("0xc", "May", 2025, "2025-05-01 10:00:01"))
	require.NoError(t, err)

	list, err := repo.ListByDate(ctx, "2025-05-01 10:00:00")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "0xb", list[0].Account)
	assert.Equal(t, "0xa", list[1].Account)

	none, err := repo.ListByDate(ctx, "2025-05-01")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestParseTime_Formats(t *testing.T) {
	for _, s := range []string{"2026-01-15T10:00:00Z", "2026-01-15 10:00:00", "2026-01-15T10:00:00"} {
		got, err := parseTime(s)
		require.NoError(t, err, s)
		assert.Equal(t, 2026, got.Year())
	}

	_, err := parseTime("yesterday")
	assert.Error(t, err)
}
