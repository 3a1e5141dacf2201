package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"vidvault/internal/domain/entity"
	"vidvault/internal/domain/model"
	"vidvault/internal/domain/repository/auth"
	"vidvault/internal/domain/repository/blob"
	"vidvault/internal/domain/repository/database"
	"vidvault/pkg/apperr"
	"vidvault/pkg/logger"
	"vidvault/pkg/utils"
)

// UploadPolicy parameterizes one asset class of the pipeline: which multipart
// field carries the file, which record field receives the URL, and what the
// class accepts.
type UploadPolicy struct {
	Class        string   `yaml:"class"`
	FormField    string   `yaml:"form_field"`
	URLField     string   `yaml:"-"`
	AllowedTypes []string `yaml:"allowed_types"`
	MaxBytes     int64    `yaml:"max_bytes"`
}

// Uploader runs the upload pipeline for a single asset class: authenticate,
// validate, authorize against the owning record, persist bytes, then link the
// asset URL into the record. Bytes are always written before the record is
// touched, so a linked URL always resolves.
type Uploader struct {
	verifier      auth.Verifier
	retriever     database.Retriever
	updater       database.Updater
	store         blob.Store
	policy        UploadPolicy
	publicBaseURL string
}

func NewUploader(verifier auth.Verifier, retriever database.Retriever, updater database.Updater,
	store blob.Store, policy UploadPolicy, publicBaseURL string,
) *Uploader {
	return &Uploader{
		verifier:      verifier,
		retriever:     retriever,
		updater:       updater,
		store:         store,
		policy:        policy,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (u *Uploader) Upload(ctx context.Context, videoID, authHeader string,
	form *multipart.Form,
) (*model.Video, error) {
	if videoID == "" {
		return nil, apperr.New(apperr.KindInvalidRequest, "missing video ID")
	}
	if _, err := uuid.Parse(videoID); err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidRequest, "invalid video ID", err)
	}

	userID, err := u.verifier.Authenticate(authHeader)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnauthenticated, err.Error(), err)
	}

	fileHeader, err := u.filePart(form)
	if err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidRequest,
			fmt.Sprintf("unreadable %s file", u.policy.Class), err)
	}
	defer file.Close()

	mediaType, err := u.mediaType(fileHeader, file)
	if err != nil {
		return nil, err
	}

	if fileHeader.Size > u.policy.MaxBytes {
		return nil, apperr.New(apperr.KindInvalidRequest,
			fmt.Sprintf("%s file exceeds the %d byte limit", u.policy.Class, u.policy.MaxBytes))
	}

	asset := entity.UploadedAsset{
		Content:   file,
		MediaType: mediaType,
		Size:      fileHeader.Size,
	}

	video, err := u.retriever.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, database.ErrVideoNotFound) {
			return nil, apperr.Wrap(apperr.KindNotFound, "video not found", err)
		}

		return nil, apperr.Wrap(apperr.KindStorage, "fetching video record failed", err)
	}
	if video.UserID != userID {
		return nil, apperr.New(apperr.KindForbidden,
			fmt.Sprintf("you do not own this video and may not upload its %s", u.policy.Class))
	}

	// One object per video per class: the key is derived from the video ID,
	// so a re-upload overwrites in place.
	key := videoID + utils.GetExtensionFromMimeType(asset.MediaType)
	if err := u.store.Write(ctx, key, asset.Content, asset.Size, asset.MediaType); err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "writing asset bytes failed", err)
	}

	oldKey := u.storedKey(video)
	url := fmt.Sprintf("%s/assets/%s", u.publicBaseURL, key)
	if err := u.updater.SetAssetURL(ctx, videoID, u.policy.URLField, url); err != nil {
		// The written object stays behind; orphan collection is out of scope.
		return nil, apperr.Wrap(apperr.KindStorage, "updating video record failed", err)
	}

	if oldKey != "" && oldKey != key {
		// A re-upload with a different media type leaves the old object under
		// a stale key. Removal is best effort; the record no longer points there.
		if err := u.store.Remove(ctx, oldKey); err != nil {
			logger.Warn("failed to remove superseded asset", "key", oldKey, "err", err)
		}
	}

	video.SetAssetURL(u.policy.URLField, url)

	return video, nil
}

func (u *Uploader) filePart(form *multipart.Form) (*multipart.FileHeader, error) {
	if form == nil || len(form.File[u.policy.FormField]) == 0 {
		return nil, apperr.New(apperr.KindInvalidRequest,
			fmt.Sprintf("no %s file provided", u.policy.Class))
	}

	return form.File[u.policy.FormField][0], nil
}

// mediaType resolves the asset's MIME type and checks it against the policy
// allow-list. The declared part header wins; content sniffing only covers
// parts that arrive untyped.
func (u *Uploader) mediaType(fileHeader *multipart.FileHeader, file multipart.File) (string, error) {
	declared := fileHeader.Header.Get("Content-Type")

	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil || mediaType == "" || mediaType == "application/octet-stream" {
		detected, derr := mimetype.DetectReader(file)
		if derr != nil {
			return "", apperr.Wrap(apperr.KindInvalidRequest,
				fmt.Sprintf("undetectable %s media type", u.policy.Class), derr)
		}
		if _, serr := file.Seek(0, 0); serr != nil {
			return "", apperr.Wrap(apperr.KindStorage, "rewinding upload failed", serr)
		}
		mediaType = detected.String()
		if parsed, _, perr := mime.ParseMediaType(mediaType); perr == nil {
			mediaType = parsed
		}
	}

	for _, allowed := range u.policy.AllowedTypes {
		if strings.EqualFold(mediaType, allowed) {
			return strings.ToLower(mediaType), nil
		}
	}

	return "", apperr.New(apperr.KindInvalidRequest,
		fmt.Sprintf("unsupported %s media type %s, allowed types: %s",
			u.policy.Class, mediaType, strings.Join(u.policy.AllowedTypes, ", ")))
}

// storedKey extracts the storage key from the record's current asset URL for
// this class, "" when no asset was ever linked.
func (u *Uploader) storedKey(video *model.Video) string {
	url := video.AssetURL(u.policy.URLField)
	if url == "" {
		return ""
	}

	return path.Base(url)
}
