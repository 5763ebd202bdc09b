package services

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mholt/archives"
	"github.com/pkg/errors"

	"emogo-backend/internal/metrics"
	"emogo-backend/internal/models"
	"emogo-backend/internal/repository"
)

// Archive layout: one records.json plus every vlog under videos/.
const (
	recordsEntryName = "records.json"
	videosPrefix     = "videos"
)

// ExportService serializes records and stored vlogs into either a structured
// listing or a single downloadable archive.
type ExportService struct {
	Repo    *repository.RecordRepositoryImpl
	Vlogs   *VlogService
	Metrics *metrics.Metrics
}

// NewExportService creates a new ExportService.
func NewExportService(repo *repository.RecordRepositoryImpl, vlogs *VlogService, m *metrics.Metrics) *ExportService {
	return &ExportService{
		Repo:    repo,
		Vlogs:   vlogs,
		Metrics: m,
	}
}

// Listing returns all records plus the metadata of every stored vlog.
func (s *ExportService) Listing() ([]models.Record, []models.VlogInfo, error) {
	records, err := s.Repo.ListRecords()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load records")
	}
	vlogs, err := s.Vlogs.List()
	if err != nil {
		return nil, nil, err
	}
	s.Metrics.Exported()
	return records, vlogs, nil
}

// Archive builds a zip containing records.json and every vlog file under
// videos/. The archive is fully buffered in memory before being returned;
// any failure aborts the whole export rather than emitting a partial file.
func (s *ExportService) Archive() ([]byte, error) {
	start := time.Now()
	ctx := context.Background()

	records, err := s.Repo.ListRecords()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load records")
	}
	recordsJSON, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize records")
	}

	// Stage everything in a temp directory so the archive writer can take
	// plain disk files, regardless of which vlog backend is configured.
	stagingDir, err := os.MkdirTemp("", "emogo-export-*")
	if err != nil {
		return nil, errors.Wrap(err, "could not create staging directory")
	}
	defer os.RemoveAll(stagingDir)

	recordsPath := filepath.Join(stagingDir, recordsEntryName)
	if err := os.WriteFile(recordsPath, recordsJSON, 0o644); err != nil {
		return nil, errors.Wrap(err, "failed to write records file")
	}

	videosDir := filepath.Join(stagingDir, videosPrefix)
	if err := os.MkdirAll(videosDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "could not create staging videos directory")
	}

	vlogs, err := s.Vlogs.Store.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vlogs")
	}
	for _, vlog := range vlogs {
		if err := s.stageVlog(ctx, videosDir, vlog.Filename); err != nil {
			return nil, err
		}
	}

	files, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		recordsPath: recordsEntryName,
		videosDir:   videosPrefix,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect archive entries")
	}

	var buf bytes.Buffer
	z := archives.Zip{Compression: zip.Deflate}
	if err := z.Archive(ctx, &buf, files); err != nil {
		return nil, errors.Wrap(err, "failed to build archive")
	}

	s.Metrics.Exported()
	s.Metrics.ArchiveBuilt(float64(time.Since(start).Microseconds())/1000.0, buf.Len())
	return buf.Bytes(), nil
}

// stageVlog copies one stored vlog into the staging videos directory.
func (s *ExportService) stageVlog(ctx context.Context, videosDir, filename string) error {
	src, err := s.Vlogs.Store.Open(ctx, filename)
	if err != nil {
		return errors.Wrapf(err, "could not open vlog %s", filename)
	}
	defer src.Close()

	out, err := os.Create(filepath.Join(videosDir, filename))
	if err != nil {
		return errors.Wrap(err, "could not create staging file")
	}
	_, err = io.Copy(out, src)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrapf(err, "failed to stage vlog %s", filename)
	}
	return nil
}
