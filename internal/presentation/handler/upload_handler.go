package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vidvault/internal/application/usecase/abstraction"
	"vidvault/internal/domain/dto"
	"vidvault/internal/observability"
	"vidvault/internal/presentation"
	"vidvault/pkg/apperr"
	"vidvault/pkg/logger"
)

// UploadHandler binds one configured upload pipeline to its route.
type UploadHandler struct {
	uploader abstraction.Uploader
	class    string
	metrics  *observability.Metrics
}

func NewUploadHandler(uploader abstraction.Uploader, class string, metrics *observability.Metrics) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		class:    class,
		metrics:  metrics,
	}
}

func (h *UploadHandler) Handle(c echo.Context) error {
	videoID := c.Param(presentation.VideoIDParam)
	authHeader := c.Request().Header.Get(presentation.AuthKey)

	// A nil form (non-multipart body) is reported by the pipeline itself, in
	// its contractual step order.
	form, _ := c.MultipartForm()

	video, err := h.uploader.Upload(c.Request().Context(), videoID, authHeader, form)
	if err != nil {
		kind := apperr.KindOf(err)
		h.metrics.ObserveUpload(h.class, string(kind))
		if kind == apperr.KindStorage {
			logger.Error("upload failed", "class", h.class, "video_id", videoID, "err", err)
		}

		return writeError(c, err)
	}

	h.metrics.ObserveUpload(h.class, "ok")
	logger.Info("asset uploaded", "class", h.class, "video_id", videoID)

	return c.JSON(http.StatusOK, dto.VideoResponse{Video: video})
}
