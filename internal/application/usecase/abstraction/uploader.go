package abstraction

import (
	"context"
	"mime/multipart"

	"vidvault/internal/domain/model"
)

type Uploader interface {
	Upload(ctx context.Context, videoID, authHeader string,
		form *multipart.Form) (*model.Video, error)
}
