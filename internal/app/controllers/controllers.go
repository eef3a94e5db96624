package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/clubhub-app/clubhub-api/internal/middleware"
	"github.com/clubhub-app/clubhub-api/internal/pkg/apperrors"
)

// pathID parses a numeric path parameter. A non-numeric value behaves like an
// id that matches no row, so callers render their not-found message.
func pathID(c *gin.Context, name, notFoundMessage string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		middleware.RenderError(c, apperrors.NewResourceNotFoundError(notFoundMessage))
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body, rendering the route's required-field
// message when the body is not valid JSON.
func bindJSON(c *gin.Context, dst interface{}, badRequestMessage string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		middleware.RenderError(c, apperrors.NewBadRequestError(badRequestMessage))
		return false
	}
	return true
}
