package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"emogo-backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Record{}))
	return db
}

func newRecord(mood, stress int, ts string) *models.Record {
	return &models.Record{
		ID:          uuid.New(),
		MoodScore:   mood,
		StressScore: stress,
		Lat:         25.03,
		Lng:         121.56,
		Accuracy:    5.0,
		Timestamp:   ts,
		CreatedAt:   time.Now().UTC(),
	}
}

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func TestCreateAndGetRecord(t *testing.T) {
	repo := NewRecordRepository(setupTestDB(t))

	record := newRecord(4, 2, "2025-01-15T10:30:00Z")
	record.VideoURL = "http://127.0.0.1:8000/vlogs/abc.mp4"
	require.NoError(t, repo.CreateRecord(record))

	got, err := repo.GetRecord(record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, 4, got.MoodScore)
	assert.Equal(t, "http://127.0.0.1:8000/vlogs/abc.mp4", got.VideoURL)
	assert.Equal(t, "2025-01-15T10:30:00Z", got.Timestamp)
}

func TestGetRecordNotFound(t *testing.T) {
	repo := NewRecordRepository(setupTestDB(t))

	_, err := repo.GetRecord(uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindRecordsMinMoodOnly(t *testing.T) {
	repo := NewRecordRepository(setupTestDB(t))
	for _, mood := range []int{1, 2, 3, 4, 5} {
		require.NoError(t, repo.CreateRecord(newRecord(mood, 3, "2025-01-15T10:30:00Z")))
	}

	records, err := repo.FindRecords(models.RecordFilter{MinMood: intPtr(3)})
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, r := range records {
		assert.GreaterOrEqual(t, r.MoodScore, 3)
	}
}

func TestFindRecordsMoodRangeIsSubsetOfMinOnly(t *testing.T) {
	repo := NewRecordRepository(setupTestDB(t))
	for _, mood := range []int{1, 2, 3, 4, 5} {
		require.NoError(t, repo.CreateRecord(newRecord(mood, 3, "2025-01-15T10:30:00Z")))
	}

	minOnly, err := repo.FindRecords(models.RecordFilter{MinMood: intPtr(2)})
	require.NoError(t, err)
	bounded, err := repo.FindRecords(models.RecordFilter{MinMood: intPtr(2), MaxMood: intPtr(4)})
	require.NoError(t, err)

	assert.Greater(t, len(minOnly), len(bounded))
	minOnlyIDs := make(map[uuid.UUID]bool)
	for _, r := range minOnly {
		minOnlyIDs[r.ID] = true
	}
	for _, r := range bounded {
		assert.True(t, minOnlyIDs[r.ID], "bounded result must be a subset of the min-only result")
		assert.GreaterOrEqual(t, r.MoodScore, 2)
		assert.LessOrEqual(t, r.MoodScore, 4)
	}
}

func TestFindRecordsDatePrefix(t *testing.T) {
	repo := NewRecordRepository(setupTestDB(t))
	match := newRecord(3, 3, "2025-01-15T10:30:00Z")
	midnightNextDay := newRecord(3, 3, "2025-01-16T00:00:00Z")
	require.NoError(t, repo.CreateRecord(match))
	require.NoError(t, repo.CreateRecord(midnightNextDay))

	records, err := repo.FindRecords(models.RecordFilter{Date: strPtr("2025-01-15")})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, match.ID, records[0].ID)
}

func TestFindRecordsDateRangeInclusive(t *testing.T) {
	repo := NewRecordRepository(setupTestDB(t))
	timestamps := []string{
		"2025-01-01T00:00:00Z",
		"2025-01-03T12:00:00Z",
		"2025-01-05T23:59:59Z",
		"2025-01-06T00:00:00Z",
	}
	for _, ts := range timestamps {
		require.NoError(t, repo.CreateRecord(newRecord(3, 3, ts)))
	}

	// Bounds are lexical and inclusive: a bare "2025-01-05" end bound would
	// sort before every same-day timestamp, so the full prefix is needed.
	records, err := repo.FindRecords(models.RecordFilter{
		Start: strPtr("2025-01-01"),
		End:   strPtr("2025-01-05T23:59:59Z"),
	})
	require.NoError(t, err)
	assert.Len(t, records, 3)

	bareDayEnd, err := repo.FindRecords(models.RecordFilter{
		Start: strPtr("2025-01-01"),
		End:   strPtr("2025-01-05"),
	})
	require.NoError(t, err)
	assert.Len(t, bareDayEnd, 2)
}

func TestFindRecordsComposite(t *testing.T) {
	repo := NewRecordRepository(setupTestDB(t))

	inside := newRecord(4, 2, "2025-01-15T10:30:00Z")
	inside.Lat, inside.Lng = 25.0, 121.5
	tooStressed := newRecord(4, 5, "2025-01-15T11:00:00Z")
	tooStressed.Lat, tooStressed.Lng = 25.0, 121.5
	outOfArea := newRecord(4, 2, "2025-01-15T12:00:00Z")
	outOfArea.Lat, outOfArea.Lng = 48.8, 2.35
	require.NoError(t, repo.CreateRecord(inside))
	require.NoError(t, repo.CreateRecord(tooStressed))
	require.NoError(t, repo.CreateRecord(outOfArea))

	records, err := repo.FindRecords(models.RecordFilter{
		MinMood:   intPtr(3),
		MaxStress: intPtr(3),
		Start:     strPtr("2025-01-15"),
		End:       strPtr("2025-01-16"),
		LatMin:    floatPtr(20.0),
		LatMax:    floatPtr(30.0),
		LngMin:    floatPtr(120.0),
		LngMax:    floatPtr(122.0),
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, inside.ID, records[0].ID)
}

func TestFindRecordsEmptyFilterMatchesAll(t *testing.T) {
	repo := NewRecordRepository(setupTestDB(t))
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateRecord(newRecord(3, 3, "2025-01-15T10:30:00Z")))
	}

	records, err := repo.FindRecords(models.RecordFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestDeleteAllRecords(t *testing.T) {
	repo := NewRecordRepository(setupTestDB(t))
	for i := 0; i < 4; i++ {
		require.NoError(t, repo.CreateRecord(newRecord(3, 3, "2025-01-15T10:30:00Z")))
	}

	deleted, err := repo.DeleteAllRecords()
	require.NoError(t, err)
	assert.EqualValues(t, 4, deleted)

	count, err := repo.CountRecords()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	records, err := repo.ListRecords()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestPing(t *testing.T) {
	repo := NewRecordRepository(setupTestDB(t))
	assert.NoError(t, repo.Ping(context.Background()))
}
