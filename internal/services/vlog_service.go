package services

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"emogo-backend/internal/metrics"
	"emogo-backend/internal/models"
	"emogo-backend/internal/storage"
)

// VlogService manages uploaded video files in the vlog store.
type VlogService struct {
	Store   storage.VlogStore
	BaseURL string
	Metrics *metrics.Metrics
}

// NewVlogService creates a new VlogService over the given store.
func NewVlogService(store storage.VlogStore, baseURL string, m *metrics.Metrics) *VlogService {
	return &VlogService{
		Store:   store,
		BaseURL: baseURL,
		Metrics: m,
	}
}

// SaveUpload stores an uploaded video under a generated unique filename
// (random token + original extension) and returns that filename.
func (s *VlogService) SaveUpload(fileHeader *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(fileHeader.Filename)
	filename := uuid.New().String() + ext

	src, err := fileHeader.Open()
	if err != nil {
		return "", errors.Wrap(err, "could not open uploaded file")
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if err := s.Store.Save(context.Background(), filename, src, fileHeader.Size, contentType); err != nil {
		return "", errors.Wrap(err, "failed to store uploaded video")
	}

	s.Metrics.VlogUploaded()
	return filename, nil
}

// PublicURL derives the public download URL for a stored vlog.
func (s *VlogService) PublicURL(filename string) string {
	return s.BaseURL + "/vlogs/" + filename
}

// Open returns a reader over a stored vlog, or storage.ErrNotFound.
func (s *VlogService) Open(filename string) (io.ReadCloser, error) {
	return s.Store.Open(context.Background(), filename)
}

// List enumerates every stored vlog with its public URL filled in.
func (s *VlogService) List() ([]models.VlogInfo, error) {
	vlogs, err := s.Store.List(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vlogs")
	}
	for i := range vlogs {
		vlogs[i].URL = s.PublicURL(vlogs[i].Filename)
	}
	return vlogs, nil
}

// Delete removes a single vlog by filename. It never touches records that
// reference the file, so callers can orphan records intentionally.
func (s *VlogService) Delete(filename string) error {
	if err := s.Store.Delete(context.Background(), filename); err != nil {
		return err
	}
	s.Metrics.VlogDeleted()
	return nil
}
