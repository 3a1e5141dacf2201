package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"vidvault/internal/application/usecase/abstraction"
	"vidvault/internal/observability"
	"vidvault/internal/presentation"
	"vidvault/pkg/apperr"
)

type AssetHandler struct {
	getter  abstraction.Getter
	metrics *observability.Metrics
}

func NewAssetHandler(getter abstraction.Getter, metrics *observability.Metrics) *AssetHandler {
	return &AssetHandler{
		getter:  getter,
		metrics: metrics,
	}
}

// HandleGet serves GET /assets/:assetKey.
func (h *AssetHandler) HandleGet(c echo.Context) error {
	key := c.Param(presentation.AssetKeyParam)

	rc, info, err := h.getter.GetAsset(c.Request().Context(), key)
	if err != nil {
		h.metrics.ObserveFetch(string(apperr.KindOf(err)))

		return writeError(c, err)
	}
	defer rc.Close()

	h.metrics.ObserveFetch("ok")

	// Keys are not content-addressed, so a re-upload changes the bytes behind
	// the same URL; the response must not be cached.
	c.Response().Header().Set("Cache-Control", "no-store")
	if info.Size > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(info.Size, 10))
	}

	return c.Stream(http.StatusOK, info.ContentType, rc)
}
