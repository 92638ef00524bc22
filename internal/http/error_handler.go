package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todolist-api.com/todolist-api/internal/constants"
	apperrors "todolist-api.com/todolist-api/internal/errors"
)

// NewErrorHandler returns the single boundary that converts every error
// raised below it into the uniform envelope. Nothing is retried and no
// internal detail leaks on unexpected failures.
func NewErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		path := c.Request().URL.Path
		resp := mapError(err, path, log)

		if jsonErr := c.JSON(resp.Status, resp); jsonErr != nil {
			log.Error("failed to write error response", zap.Error(jsonErr))
		}
	}
}

func mapError(err error, path string, log *zap.Logger) apperrors.ErrorResponse {
	var valErr *apperrors.ValidationException
	if errors.As(err, &valErr) {
		log.Warn("validation error", zap.String("path", path))
		resp := apperrors.NewErrorResponse(http.StatusBadRequest, valErr.Error(), path)
		resp.ValidationErrors = valErr.Errors
		return resp
	}

	if errors.Is(err, constants.ErrInvalidStatus) {
		log.Warn("invalid status token", zap.String("path", path))
		return apperrors.NewErrorResponse(http.StatusBadRequest, constants.ErrInvalidStatus.Error(), path)
	}

	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		log.Warn(appErr.Message, zap.Int("status", appErr.StatusCode), zap.String("path", path))
		return apperrors.NewErrorResponse(appErr.StatusCode, appErr.Message, path)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			// No operation matches the path/method pair.
			log.Warn("endpoint not found", zap.String("path", path))
			return apperrors.NewErrorResponse(http.StatusNotFound, "endpoint not found: "+path, path)
		case http.StatusBadRequest:
			log.Warn("malformed request body", zap.String("path", path), zap.Error(err))
			return apperrors.NewErrorResponse(http.StatusBadRequest, "malformed JSON or incompatible data in request body", path)
		default:
			log.Warn("http error", zap.Int("status", httpErr.Code), zap.String("path", path), zap.Error(err))
			return apperrors.NewErrorResponse(httpErr.Code, http.StatusText(httpErr.Code), path)
		}
	}

	log.Error("internal server error", zap.String("path", path), zap.Error(err))
	return apperrors.NewErrorResponse(http.StatusInternalServerError, "internal server error, please try again later", path)
}
