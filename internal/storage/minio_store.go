package storage

import (
	"context"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"emogo-backend/internal/config"
	"emogo-backend/internal/models"
)

// MinioStore keeps vlogs as objects in a MinIO bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore initializes a MinIO client and ensures the bucket exists.
func NewMinioStore(cfg *config.Config) (*MinioStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioSSL,
	})
	if err != nil {
		return nil, err
	}
	ctx := context.Background()
	exists, errBucket := client.BucketExists(ctx, cfg.MinioBucket)
	if errBucket != nil {
		return nil, errBucket
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{Region: ""})
		if err != nil {
			return nil, err
		}
		log.Printf("Created bucket %s\n", cfg.MinioBucket)
	}
	return &MinioStore{client: client, bucket: cfg.MinioBucket}, nil
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}

// Save uploads the vlog content as an object named by filename.
func (s *MinioStore) Save(ctx context.Context, filename string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, filename, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "failed to upload to MinIO")
	}
	return nil
}

// Open returns a reader over the stored object, or ErrNotFound.
func (s *MinioStore) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, filename, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "unable to retrieve object")
	}
	// GetObject is lazy; Stat forces the lookup so absence surfaces here.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		if isNoSuchKey(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "unable to stat object")
	}
	return obj, nil
}

// List enumerates every object in the bucket.
func (s *MinioStore) List(ctx context.Context) ([]models.VlogInfo, error) {
	vlogs := make([]models.VlogInfo, 0)
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{}) {
		if obj.Err != nil {
			return nil, errors.Wrap(obj.Err, "failed to list bucket")
		}
		vlogs = append(vlogs, models.VlogInfo{
			Filename:   obj.Key,
			Size:       obj.Size,
			ModifiedAt: obj.LastModified,
		})
	}
	return vlogs, nil
}

// Delete removes a single object, returning ErrNotFound if it is absent.
func (s *MinioStore) Delete(ctx context.Context, filename string) error {
	if _, err := s.client.StatObject(ctx, s.bucket, filename, minio.StatObjectOptions{}); err != nil {
		if isNoSuchKey(err) {
			return ErrNotFound
		}
		return errors.Wrap(err, "unable to stat object")
	}
	return s.client.RemoveObject(ctx, s.bucket, filename, minio.RemoveObjectOptions{})
}

// DeleteAll removes every object in the bucket and reports how many were deleted.
func (s *MinioStore) DeleteAll(ctx context.Context) (int, error) {
	deleted := 0
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{}) {
		if obj.Err != nil {
			return deleted, errors.Wrap(obj.Err, "failed to list bucket")
		}
		if err := s.client.RemoveObject(ctx, s.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			return deleted, errors.Wrap(err, "failed to delete object")
		}
		deleted++
	}
	return deleted, nil
}

// Ping checks bucket reachability for health reporting.
func (s *MinioStore) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}
