package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/app/services"
	"github.com/clubhub-app/clubhub-api/internal/middleware"
	"github.com/clubhub-app/clubhub-api/internal/pkg/apperrors"
)

// ClubController handles club CRUD and membership link routes.
type ClubController struct {
	clubService services.ClubService
}

// NewClubController creates a new ClubController.
func NewClubController(clubService services.ClubService) *ClubController {
	return &ClubController{clubService: clubService}
}

// GetClubs lists every club with members, recent announcements and events.
func (cc *ClubController) GetClubs(c *gin.Context) {
	resp, err := cc.clubService.GetAllClubs(c.Request.Context())
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetClub returns one club's detail.
func (cc *ClubController) GetClub(c *gin.Context) {
	id, ok := pathID(c, "id", "Club not found")
	if !ok {
		return
	}
	resp, err := cc.clubService.GetClubByID(c.Request.Context(), id)
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateClub creates a club.
func (cc *ClubController) CreateClub(c *gin.Context) {
	var req dto.CreateClubRequest
	if !bindJSON(c, &req, "Club name is required") {
		return
	}
	resp, err := cc.clubService.CreateClub(c.Request.Context(), &req)
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateClub applies a partial update to a club.
func (cc *ClubController) UpdateClub(c *gin.Context) {
	id, ok := pathID(c, "id", "Club not found")
	if !ok {
		return
	}
	var req dto.UpdateClubRequest
	if !bindJSON(c, &req, "At least one field required") {
		return
	}
	if err := cc.clubService.UpdateClub(c.Request.Context(), id, &req); err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Club updated successfully"})
}

// DeleteClub removes a club and everything hanging off it.
func (cc *ClubController) DeleteClub(c *gin.Context) {
	id, ok := pathID(c, "id", "Club not found")
	if !ok {
		return
	}
	if err := cc.clubService.DeleteClub(c.Request.Context(), id); err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Club deleted successfully"})
}

// JoinClub links the posting member to the club.
func (cc *ClubController) JoinClub(c *gin.Context) {
	id, ok := pathID(c, "id", "Club not found")
	if !ok {
		return
	}
	var req dto.JoinLeaveRequest
	if !bindJSON(c, &req, "Member ID required") {
		return
	}
	if req.MemberID == nil {
		middleware.RenderError(c, apperrors.NewBadRequestError("Member ID required"))
		return
	}
	if err := cc.clubService.JoinClub(c.Request.Context(), id, *req.MemberID); err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully joined club"})
}

// LeaveClub removes the posting member's own link.
func (cc *ClubController) LeaveClub(c *gin.Context) {
	id, ok := pathID(c, "id", "Club not found")
	if !ok {
		return
	}
	var req dto.JoinLeaveRequest
	if !bindJSON(c, &req, "Member ID required") {
		return
	}
	if req.MemberID == nil {
		middleware.RenderError(c, apperrors.NewBadRequestError("Member ID required"))
		return
	}
	if err := cc.clubService.LeaveClub(c.Request.Context(), id, *req.MemberID); err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully left club"})
}

// RemoveMember removes a member's link on a leader's or admin's behalf.
func (cc *ClubController) RemoveMember(c *gin.Context) {
	clubID, ok := pathID(c, "id", "Club not found")
	if !ok {
		return
	}
	memberID, ok := pathID(c, "memberId", "Member not found")
	if !ok {
		return
	}
	if err := cc.clubService.RemoveMember(c.Request.Context(), clubID, memberID); err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Member removed successfully"})
}
