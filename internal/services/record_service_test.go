package services

import (
	"context"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"emogo-backend/internal/models"
	"emogo-backend/internal/repository"
	"emogo-backend/internal/storage"
)

const testBaseURL = "http://127.0.0.1:8000"

func setupServices(t *testing.T) (*RecordService, *VlogService) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Record{}))

	store, err := storage.NewFileSystemStore(t.TempDir())
	require.NoError(t, err)

	repo := repository.NewRecordRepository(db)
	return NewRecordService(repo, store, nil), NewVlogService(store, testBaseURL, nil)
}

func storeVlog(t *testing.T, store storage.VlogStore, filename, content string) {
	t.Helper()
	err := store.Save(context.Background(), filename, strings.NewReader(content), int64(len(content)), "video/mp4")
	require.NoError(t, err)
}

func testInput(mood, stress int, ts, videoURL string) models.RecordInput {
	return models.RecordInput{
		MoodScore:   mood,
		StressScore: stress,
		Lat:         25.03,
		Lng:         121.56,
		Accuracy:    5.0,
		VideoURL:    videoURL,
		Timestamp:   ts,
	}
}

func TestCreateRecordAssignsIDAndCreatedAt(t *testing.T) {
	recordService, _ := setupServices(t)

	record, err := recordService.CreateRecord(testInput(4, 2, "2025-01-15T10:30:00Z", ""))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.False(t, record.CreatedAt.IsZero())

	got, err := recordService.GetRecord(record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
}

func TestDeleteRecordCascadesToVlog(t *testing.T) {
	recordService, _ := setupServices(t)
	storeVlog(t, recordService.Store, "abc.mp4", "video content")

	record, err := recordService.CreateRecord(testInput(4, 2, "2025-01-15T10:30:00Z", testBaseURL+"/vlogs/abc.mp4"))
	require.NoError(t, err)

	filename, err := recordService.DeleteRecord(record.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc.mp4", filename)

	_, err = recordService.GetRecord(record.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = recordService.Store.Open(context.Background(), "abc.mp4")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteRecordTwiceReturnsNotFound(t *testing.T) {
	recordService, _ := setupServices(t)

	record, err := recordService.CreateRecord(testInput(3, 3, "2025-01-15T10:30:00Z", ""))
	require.NoError(t, err)

	_, err = recordService.DeleteRecord(record.ID)
	require.NoError(t, err)

	_, err = recordService.DeleteRecord(record.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteRecordWithMissingVlogStillSucceeds(t *testing.T) {
	recordService, _ := setupServices(t)

	record, err := recordService.CreateRecord(testInput(3, 3, "2025-01-15T10:30:00Z", testBaseURL+"/vlogs/gone.mp4"))
	require.NoError(t, err)

	filename, err := recordService.DeleteRecord(record.ID)
	require.NoError(t, err)
	assert.Equal(t, "gone.mp4", filename)
}

func TestDeleteRecordWithoutVideoSkipsVlogDelete(t *testing.T) {
	recordService, _ := setupServices(t)

	record, err := recordService.CreateRecord(testInput(3, 3, "2025-01-15T10:30:00Z", ""))
	require.NoError(t, err)

	filename, err := recordService.DeleteRecord(record.ID)
	require.NoError(t, err)
	assert.Equal(t, "", filename)
}

func TestDeleteAllClearsBothStores(t *testing.T) {
	recordService, vlogService := setupServices(t)
	storeVlog(t, recordService.Store, "a.mp4", "a")
	storeVlog(t, recordService.Store, "b.mp4", "b")
	for i := 0; i < 3; i++ {
		_, err := recordService.CreateRecord(testInput(3, 3, "2025-01-15T10:30:00Z", ""))
		require.NoError(t, err)
	}

	require.NoError(t, recordService.DeleteAll())

	records, err := recordService.ListRecords()
	require.NoError(t, err)
	assert.Empty(t, records)

	vlogs, err := vlogService.List()
	require.NoError(t, err)
	assert.Empty(t, vlogs)
}

func TestVlogServicePublicURL(t *testing.T) {
	_, vlogService := setupServices(t)
	assert.Equal(t, testBaseURL+"/vlogs/abc.mp4", vlogService.PublicURL("abc.mp4"))
}

func TestVlogServiceDeleteLeavesRecordsUntouched(t *testing.T) {
	recordService, vlogService := setupServices(t)
	storeVlog(t, recordService.Store, "abc.mp4", "content")

	record, err := recordService.CreateRecord(testInput(3, 3, "2025-01-15T10:30:00Z", testBaseURL+"/vlogs/abc.mp4"))
	require.NoError(t, err)

	require.NoError(t, vlogService.Delete("abc.mp4"))

	// The record now references a missing vlog; that is the caller's choice.
	got, err := recordService.GetRecord(record.ID)
	require.NoError(t, err)
	assert.Equal(t, testBaseURL+"/vlogs/abc.mp4", got.VideoURL)

	err = vlogService.Delete("abc.mp4")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
