package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	repo "vidvault/internal/domain/repository/database"
)

type VideoUpdater struct {
	db *Database
}

func NewVideoUpdater(db *Database) *VideoUpdater {
	return &VideoUpdater{db: db}
}

// SetAssetURL points the named asset field of a video record at url.
func (u *VideoUpdater) SetAssetURL(ctx context.Context, videoID, field, url string) error {
	ctx, cancel := context.WithTimeout(ctx, u.db.QueryTimeout)
	defer cancel()

	coll := u.db.Client.Database(u.db.DBName).Collection(VideoCollection)

	result, err := coll.UpdateOne(ctx, bson.M{"_id": videoID}, bson.M{
		"$set": bson.M{
			field:        url,
			"updated_at": time.Now(),
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repo.ErrVideoNotFound
	}

	return nil
}
