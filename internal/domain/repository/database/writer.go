package database

import (
	"context"

	"vidvault/internal/domain/model"
)

type Writer interface {
	Create(ctx context.Context, video *model.Video) error
}
