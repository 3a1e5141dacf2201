package minio

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/minio/minio-go/v7"

	"vidvault/internal/domain/repository/blob"
)

// Store is the durable byte sink backed by a MinIO bucket.
type Store struct {
	client *minio.Client
	cfg    StoreConfig
}

func NewStore(client *minio.Client, cfg StoreConfig) *Store {
	return &Store{
		client: client,
		cfg:    cfg,
	}
}

func (s *Store) Write(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})

	return err
}

func (s *Store) Read(ctx context.Context, key string) (io.ReadCloser, blob.ObjectInfo, error) {
	statCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	// Stat first: GetObject defers the existence check to the first read,
	// which is too late to map the error onto a response status.
	stat, err := s.client.StatObject(statCtx, s.cfg.Bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, blob.ObjectInfo{}, mapNotFound(err)
	}

	// The caller streams from the returned object, so it gets the request
	// context rather than the short per-op timeout.

	obj, err := s.client.GetObject(ctx, s.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, blob.ObjectInfo{}, mapNotFound(err)
	}

	return obj, blob.ObjectInfo{
		Size:        stat.Size,
		ContentType: stat.ContentType,
	}, nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	return s.client.RemoveObject(ctx, s.cfg.Bucket, key, minio.RemoveObjectOptions{})
}

func mapNotFound(err error) error {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
		return blob.ErrNotFound
	}

	return err
}
