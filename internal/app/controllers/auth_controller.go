package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/app/services"
	"github.com/clubhub-app/clubhub-api/internal/middleware"
)

// AuthController handles login and member registration.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login resolves credentials to an admin, leader or member identity.
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req, "Email and password required") {
		return
	}
	resp, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Register creates a member account.
func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req, "All fields are required") {
		return
	}
	resp, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
