package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"vidvault/internal/domain/dto"
	"vidvault/pkg/apperr"
)

// writeError maps a pipeline error onto the HTTP error document. Untagged
// errors get a generic message so internals never reach the client.
func writeError(c echo.Context, err error) error {
	kind := apperr.KindOf(err)

	message := "internal error"
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	return c.JSON(kind.HTTPStatus(), dto.ErrorResponse{
		Kind:  string(kind),
		Error: message,
	})
}
