package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/app/services"
	"github.com/clubhub-app/clubhub-api/internal/middleware"
)

// UserController manages administrative accounts.
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetUsers lists administrative accounts.
func (uc *UserController) GetUsers(c *gin.Context) {
	resp, err := uc.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetUser returns a single administrative account.
func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id", "User not found")
	if !ok {
		return
	}
	resp, err := uc.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateUser applies a partial update to an administrative account.
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id", "User not found")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req, "Invalid request body") {
		return
	}
	if err := uc.userService.UpdateUser(c.Request.Context(), id, &req); err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User updated successfully"})
}

// DeleteUser removes an administrative account.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id", "User not found")
	if !ok {
		return
	}
	if err := uc.userService.DeleteUser(c.Request.Context(), id); err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}
