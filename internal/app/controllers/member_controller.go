package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/app/services"
	"github.com/clubhub-app/clubhub-api/internal/middleware"
)

// MemberController exposes the member directory and profiles.
type MemberController struct {
	memberService services.MemberService
}

// NewMemberController creates a new MemberController.
func NewMemberController(memberService services.MemberService) *MemberController {
	return &MemberController{memberService: memberService}
}

// GetMembers lists every member, ordered by name.
func (mc *MemberController) GetMembers(c *gin.Context) {
	resp, err := mc.memberService.GetAllMembers(c.Request.Context())
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMember returns a member's profile plus the clubs they belong to.
func (mc *MemberController) GetMember(c *gin.Context) {
	id, ok := pathID(c, "id", "Member not found")
	if !ok {
		return
	}
	resp, err := mc.memberService.GetMemberProfile(c.Request.Context(), id)
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateMember applies a partial profile update and returns the stored row.
func (mc *MemberController) UpdateMember(c *gin.Context) {
	id, ok := pathID(c, "id", "Member not found")
	if !ok {
		return
	}
	var req dto.UpdateMemberProfileRequest
	if !bindJSON(c, &req, "Invalid request body") {
		return
	}
	resp, err := mc.memberService.UpdateMemberProfile(c.Request.Context(), id, &req)
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
