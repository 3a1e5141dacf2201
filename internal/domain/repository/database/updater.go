package database

import "context"

// Updater links a stored asset into a video record. SetAssetURL must only be
// called after the asset bytes are durably written; it returns
// ErrVideoNotFound when the record vanished between fetch and update.
type Updater interface {
	SetAssetURL(ctx context.Context, videoID, field, url string) error
}
