package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"emogo-backend/internal/metrics"
	"emogo-backend/internal/models"
	"emogo-backend/internal/repository"
	"emogo-backend/internal/storage"
)

// RecordService manages journal records and their cascade to stored vlogs.
type RecordService struct {
	Repo    *repository.RecordRepositoryImpl
	Store   storage.VlogStore
	Metrics *metrics.Metrics
}

// NewRecordService creates a new RecordService with the given repository and vlog store.
func NewRecordService(repo *repository.RecordRepositoryImpl, store storage.VlogStore, m *metrics.Metrics) *RecordService {
	return &RecordService{
		Repo:    repo,
		Store:   store,
		Metrics: m,
	}
}

// CreateRecord persists a new record, assigning its id and creation time.
func (s *RecordService) CreateRecord(in models.RecordInput) (*models.Record, error) {
	record := &models.Record{
		ID:          uuid.New(),
		MoodScore:   in.MoodScore,
		StressScore: in.StressScore,
		Lat:         in.Lat,
		Lng:         in.Lng,
		Accuracy:    in.Accuracy,
		VideoURL:    in.VideoURL,
		Timestamp:   in.Timestamp,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.CreateRecord(record); err != nil {
		return nil, errors.Wrap(err, "failed to save record to database")
	}
	s.Metrics.RecordUploaded()
	return record, nil
}

// GetRecord retrieves a record's data by ID.
func (s *RecordService) GetRecord(id uuid.UUID) (*models.Record, error) {
	return s.Repo.GetRecord(id)
}

// ListRecords returns all stored records.
func (s *RecordService) ListRecords() ([]models.Record, error) {
	return s.Repo.ListRecords()
}

// FindRecords returns the records matching the given filter.
func (s *RecordService) FindRecords(filter models.RecordFilter) ([]models.Record, error) {
	return s.Repo.FindRecords(filter)
}

// vlogFilename extracts the stored filename from a videoUrl: the blob's
// unique name is always the URL's final path segment.
func vlogFilename(videoURL string) string {
	parts := strings.Split(videoURL, "/")
	return parts[len(parts)-1]
}

// DeleteRecord removes a record and then, best-effort, the vlog its videoUrl
// references. A vlog that is already gone is not an error. Returns the name
// of the vlog that was targeted, or "" if the record had no video.
func (s *RecordService) DeleteRecord(id uuid.UUID) (string, error) {
	record, err := s.Repo.GetRecord(id)
	if err != nil {
		return "", err
	}
	if err := s.Repo.DeleteRecord(id); err != nil {
		return "", errors.Wrap(err, "failed to delete record")
	}

	var filename string
	if record.VideoURL != "" {
		filename = vlogFilename(record.VideoURL)
		if err := s.Store.Delete(context.Background(), filename); err != nil && !errors.Is(err, storage.ErrNotFound) {
			// The record is gone; the leftover vlog is an accepted
			// inconsistency, not a failure of the delete.
			log.Printf("Record %s deleted but vlog %s could not be removed: %v", id, filename, err)
		}
	}

	s.Metrics.RecordDeleted()
	return filename, nil
}

// DeleteAll unconditionally clears every record and every vlog. The two
// stores are cleared independently; there is no transaction across them.
func (s *RecordService) DeleteAll() error {
	deletedRecords, err := s.Repo.DeleteAllRecords()
	if err != nil {
		return errors.Wrap(err, "failed to delete records")
	}
	deletedVlogs, err := s.Store.DeleteAll(context.Background())
	if err != nil {
		return errors.Wrap(err, "failed to delete vlogs")
	}
	log.Printf("Deleted all data: %d records, %d vlogs", deletedRecords, deletedVlogs)
	s.Metrics.BulkDeleted()
	return nil
}

// Ping checks record store reachability for health reporting.
func (s *RecordService) Ping(ctx context.Context) error {
	return s.Repo.Ping(ctx)
}
