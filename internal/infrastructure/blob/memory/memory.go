// Package memory holds uploaded bytes in process memory. It exists for tests
// and local development: everything stored here is lost on restart, so
// production deployments use the MinIO store behind the same interface.
package memory

import (
	"bytes"
	"context"
	"io"
	"sync"

	"vidvault/internal/domain/repository/blob"
)

type object struct {
	data        []byte
	contentType string
}

type Store struct {
	mu      sync.RWMutex
	objects map[string]object
}

func NewStore() *Store {
	return &Store{
		objects: make(map[string]object),
	}
}

func (s *Store) Write(_ context.Context, key string, r io.Reader, size int64, contentType string) error {
	var buf bytes.Buffer
	if size > 0 {
		buf.Grow(int(size))
	}
	if _, err := io.Copy(&buf, r); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = object{
		data:        buf.Bytes(),
		contentType: contentType,
	}

	return nil
}

func (s *Store) Read(_ context.Context, key string) (io.ReadCloser, blob.ObjectInfo, error) {
	s.mu.RLock()
	obj, ok := s.objects[key]
	s.mu.RUnlock()

	if !ok {
		return nil, blob.ObjectInfo{}, blob.ErrNotFound
	}

	return io.NopCloser(bytes.NewReader(obj.data)), blob.ObjectInfo{
		Size:        int64(len(obj.data)),
		ContentType: obj.contentType,
	}, nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[key]; !ok {
		return blob.ErrNotFound
	}
	delete(s.objects, key)

	return nil
}
