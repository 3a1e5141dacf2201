package abstraction

import (
	"context"
	"io"

	"vidvault/internal/domain/repository/blob"
)

// Getter serves previously stored asset bytes by storage key.
type Getter interface {
	GetAsset(ctx context.Context, key string) (io.ReadCloser, blob.ObjectInfo, error)
}
