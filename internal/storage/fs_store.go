package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"emogo-backend/internal/models"
)

// FileSystemStore keeps vlogs as plain files in a single directory.
type FileSystemStore struct {
	dir string
}

// NewFileSystemStore creates the vlog directory if needed and returns a
// store over it.
func NewFileSystemStore(dir string) (*FileSystemStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "could not create vlog directory")
	}
	return &FileSystemStore{dir: dir}, nil
}

// Dir returns the directory the store writes to.
func (s *FileSystemStore) Dir() string {
	return s.dir
}

func (s *FileSystemStore) path(filename string) string {
	// Base strips any path components a crafted filename could carry.
	return filepath.Join(s.dir, filepath.Base(filename))
}

// Save writes the vlog content to disk under the given filename.
func (s *FileSystemStore) Save(_ context.Context, filename string, r io.Reader, _ int64, _ string) error {
	out, err := os.Create(s.path(filename))
	if err != nil {
		return errors.Wrap(err, "could not create vlog file")
	}
	_, err = io.Copy(out, r)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(s.path(filename))
		return errors.Wrap(err, "failed to write vlog file")
	}
	return nil
}

// Open returns a reader over the stored vlog, or ErrNotFound.
func (s *FileSystemStore) Open(_ context.Context, filename string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(filename))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not open vlog file")
	}
	return f, nil
}

// List enumerates every vlog file with its size and modification time.
func (s *FileSystemStore) List(_ context.Context) ([]models.VlogInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrap(err, "could not read vlog directory")
	}
	vlogs := make([]models.VlogInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, errors.Wrap(err, "could not stat vlog file")
		}
		vlogs = append(vlogs, models.VlogInfo{
			Filename:   entry.Name(),
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
		})
	}
	return vlogs, nil
}

// Delete removes a single vlog file, returning ErrNotFound if it is absent.
func (s *FileSystemStore) Delete(_ context.Context, filename string) error {
	path := s.path(filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return ErrNotFound
	}
	return os.Remove(path)
}

// DeleteAll removes every vlog file and reports how many were deleted.
func (s *FileSystemStore) DeleteAll(_ context.Context) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, errors.Wrap(err, "could not read vlog directory")
	}
	deleted := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return deleted, errors.Wrap(err, "failed to delete vlog file")
		}
		deleted++
	}
	return deleted, nil
}

// Ping checks that the vlog directory is reachable.
func (s *FileSystemStore) Ping(_ context.Context) error {
	_, err := os.Stat(s.dir)
	return err
}
