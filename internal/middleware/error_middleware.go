package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/pkg/apperrors"
)

// statusFromError maps the application sentinels to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RenderError writes the flat error body for an application error. Unexpected
// errors become a generic 500; the underlying message is only exposed outside
// release mode.
func RenderError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request failed")
		body := dto.ErrorResponse{Error: "Internal server error"}
		if gin.Mode() != gin.ReleaseMode {
			body.Details = err.Error()
		}
		c.JSON(status, body)
		return
	}

	var custom *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}
	c.JSON(status, dto.ErrorResponse{Error: message})
}
