package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"vidvault/internal/domain/model"
	repo "vidvault/internal/domain/repository/database"
)

type VideoRetriever struct {
	db *Database
}

func NewVideoRetriever(db *Database) *VideoRetriever {
	return &VideoRetriever{db: db}
}

func (r *VideoRetriever) GetByID(ctx context.Context, id string) (*model.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(VideoCollection)

	var video model.Video
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repo.ErrVideoNotFound
		}

		return nil, err
	}

	return &video, nil
}
