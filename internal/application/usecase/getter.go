package usecase

import (
	"context"
	"errors"
	"io"
	"strings"

	"vidvault/internal/domain/repository/blob"
	"vidvault/pkg/apperr"
)

// Getter serves stored asset bytes from the same store the pipeline writes,
// never from a process-local cache.
type Getter struct {
	store blob.Store
}

func NewGetter(store blob.Store) *Getter {
	return &Getter{store: store}
}

func (g *Getter) GetAsset(ctx context.Context, key string) (io.ReadCloser, blob.ObjectInfo, error) {
	// Keys are flat; anything path-shaped was never written by the pipeline.
	if key == "" || strings.ContainsAny(key, "/\\") || strings.Contains(key, "..") {
		return nil, blob.ObjectInfo{}, apperr.New(apperr.KindNotFound, "asset not found")
	}

	rc, info, err := g.store.Read(ctx, key)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return nil, blob.ObjectInfo{}, apperr.Wrap(apperr.KindNotFound, "asset not found", err)
		}

		return nil, blob.ObjectInfo{}, apperr.Wrap(apperr.KindStorage, "reading asset bytes failed", err)
	}

	return rc, info, nil
}
