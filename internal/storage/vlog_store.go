package storage

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"emogo-backend/internal/models"
)

// ErrNotFound is returned when a vlog with the requested filename does not
// exist in the store.
var ErrNotFound = errors.New("vlog not found")

// VlogStore abstracts where uploaded video files live. Filenames are the
// generated unique names (uuid + original extension), never paths.
type VlogStore interface {
	Save(ctx context.Context, filename string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, filename string) (io.ReadCloser, error)
	List(ctx context.Context) ([]models.VlogInfo, error)
	Delete(ctx context.Context, filename string) error
	DeleteAll(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}
