package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/app/services"
	"github.com/clubhub-app/clubhub-api/internal/middleware"
)

// MembershipController handles a club's membership program.
type MembershipController struct {
	membershipService services.MembershipService
}

// NewMembershipController creates a new MembershipController.
func NewMembershipController(membershipService services.MembershipService) *MembershipController {
	return &MembershipController{membershipService: membershipService}
}

// GetMembership returns the club's plan, or an empty object when none has
// been saved yet.
func (mc *MembershipController) GetMembership(c *gin.Context) {
	id, ok := pathID(c, "id", "Club not found")
	if !ok {
		return
	}
	plan, err := mc.membershipService.GetPlan(c.Request.Context(), id)
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	if plan == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// SaveMembership creates or replaces the club's plan.
func (mc *MembershipController) SaveMembership(c *gin.Context) {
	id, ok := pathID(c, "id", "Club not found")
	if !ok {
		return
	}
	var req dto.MembershipPlanRequest
	if !bindJSON(c, &req, "Invalid request body") {
		return
	}
	if err := mc.membershipService.SavePlan(c.Request.Context(), id, &req); err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Membership info saved successfully!"})
}
