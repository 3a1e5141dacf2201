package database

import (
	"context"

	"vidvault/internal/domain/model"
)

type VideoWriter struct {
	db *Database
}

func NewVideoWriter(db *Database) *VideoWriter {
	return &VideoWriter{db: db}
}

func (w *VideoWriter) Create(ctx context.Context, video *model.Video) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(VideoCollection)

	_, err := coll.InsertOne(ctx, video)

	return err
}
