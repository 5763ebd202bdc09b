package services

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emogo-backend/internal/models"
)

func setupExport(t *testing.T) (*ExportService, *RecordService) {
	t.Helper()
	recordService, vlogService := setupServices(t)
	return NewExportService(recordService.Repo, vlogService, nil), recordService
}

func TestListingExport(t *testing.T) {
	exportService, recordService := setupExport(t)
	storeVlog(t, recordService.Store, "abc.mp4", "video bytes")

	created, err := recordService.CreateRecord(testInput(4, 2, "2025-01-15T10:30:00Z", testBaseURL+"/vlogs/abc.mp4"))
	require.NoError(t, err)

	records, vlogs, err := exportService.Listing()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, created.ID, records[0].ID)

	require.Len(t, vlogs, 1)
	assert.Equal(t, "abc.mp4", vlogs[0].Filename)
	assert.Equal(t, testBaseURL+"/vlogs/abc.mp4", vlogs[0].URL)
	assert.EqualValues(t, len("video bytes"), vlogs[0].Size)
}

func TestListingExportEmptyStores(t *testing.T) {
	exportService, _ := setupExport(t)

	records, vlogs, err := exportService.Listing()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.NotNil(t, vlogs)
	assert.Empty(t, vlogs)
}

func readArchive(t *testing.T, data []byte) *zip.Reader {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return zr
}

func TestArchiveExportContents(t *testing.T) {
	exportService, recordService := setupExport(t)
	storeVlog(t, recordService.Store, "one.mp4", "first video")
	storeVlog(t, recordService.Store, "two.mp4", "second video")
	for i := 0; i < 2; i++ {
		_, err := recordService.CreateRecord(testInput(3, 3, "2025-01-15T10:30:00Z", ""))
		require.NoError(t, err)
	}

	data, err := exportService.Archive()
	require.NoError(t, err)

	zr := readArchive(t, data)
	var recordsEntries int
	videos := make(map[string]string)
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		switch {
		case f.Name == "records.json":
			recordsEntries++
			rc, err := f.Open()
			require.NoError(t, err)
			var records []models.Record
			require.NoError(t, json.NewDecoder(rc).Decode(&records))
			rc.Close()
			assert.Len(t, records, 2)
		case strings.HasPrefix(f.Name, "videos/"):
			rc, err := f.Open()
			require.NoError(t, err)
			content, err := io.ReadAll(rc)
			rc.Close()
			require.NoError(t, err)
			videos[f.Name] = string(content)
		default:
			t.Errorf("unexpected archive entry: %s", f.Name)
		}
	}

	assert.Equal(t, 1, recordsEntries)
	assert.Equal(t, map[string]string{
		"videos/one.mp4": "first video",
		"videos/two.mp4": "second video",
	}, videos)
}

func TestArchiveExportEmptyStores(t *testing.T) {
	exportService, _ := setupExport(t)

	data, err := exportService.Archive()
	require.NoError(t, err)

	zr := readArchive(t, data)
	found := false
	for _, f := range zr.File {
		if f.Name == "records.json" {
			found = true
			rc, err := f.Open()
			require.NoError(t, err)
			var records []models.Record
			require.NoError(t, json.NewDecoder(rc).Decode(&records))
			rc.Close()
			assert.Empty(t, records)
		}
	}
	assert.True(t, found, "archive must contain records.json even when empty")
}
