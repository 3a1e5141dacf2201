package model

import "time"

// Video is the metadata record for one hosted video, keyed by its UUID.
// Asset URL fields stay nil until the matching upload succeeds; once set they
// always point at bytes the blob store holds.
type Video struct {
	ID           string    `bson:"_id" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
	ThumbnailURL *string   `bson:"thumbnail_url" json:"thumbnail_url"`
	VideoURL     *string   `bson:"video_url" json:"video_url"`
}

// AssetURL returns the stored URL for the named asset field, or "" when the
// field is unset.
func (v *Video) AssetURL(field string) string {
	var url *string
	switch field {
	case FieldThumbnailURL:
		url = v.ThumbnailURL
	case FieldVideoURL:
		url = v.VideoURL
	}

	if url == nil {
		return ""
	}

	return *url
}

// SetAssetURL sets the named asset field on the in-memory record.
func (v *Video) SetAssetURL(field, url string) {
	switch field {
	case FieldThumbnailURL:
		v.ThumbnailURL = &url
	case FieldVideoURL:
		v.VideoURL = &url
	}
}

// Asset URL field names as stored in the videos collection.
const (
	FieldThumbnailURL = "thumbnail_url"
	FieldVideoURL     = "video_url"
)
