package database

import (
	"context"
	"errors"

	"vidvault/internal/domain/model"
)

// ErrVideoNotFound is returned when no record exists for the requested ID.
var ErrVideoNotFound = errors.New("video not found")

type Retriever interface {
	GetByID(ctx context.Context, id string) (*model.Video, error)
}
