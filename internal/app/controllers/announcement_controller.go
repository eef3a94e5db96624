package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/app/services"
	"github.com/clubhub-app/clubhub-api/internal/middleware"
)

// AnnouncementController handles club-scoped and platform-wide announcements.
type AnnouncementController struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController.
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{announcementService: announcementService}
}

// GetClubAnnouncements lists a club's announcements, newest first.
func (ac *AnnouncementController) GetClubAnnouncements(c *gin.Context) {
	id, ok := pathID(c, "id", "Club not found")
	if !ok {
		return
	}
	resp, err := ac.announcementService.ListClubAnnouncements(c.Request.Context(), id)
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateClubAnnouncement posts an announcement to a club.
func (ac *AnnouncementController) CreateClubAnnouncement(c *gin.Context) {
	id, ok := pathID(c, "id", "Club not found")
	if !ok {
		return
	}
	var req dto.CreateAnnouncementRequest
	if !bindJSON(c, &req, "Announcement text required") {
		return
	}
	resp, err := ac.announcementService.CreateClubAnnouncement(c.Request.Context(), id, &req)
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// DeleteClubAnnouncement removes an announcement; already-gone ids still
// report success.
func (ac *AnnouncementController) DeleteClubAnnouncement(c *gin.Context) {
	clubID, ok := pathID(c, "id", "Club not found")
	if !ok {
		return
	}
	announcementID, ok := pathID(c, "announcementId", "Announcement not found")
	if !ok {
		return
	}
	if err := ac.announcementService.DeleteClubAnnouncement(c.Request.Context(), clubID, announcementID); err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Announcement deleted successfully"})
}

// GetGeneralAnnouncements lists platform-wide announcements, newest first.
func (ac *AnnouncementController) GetGeneralAnnouncements(c *gin.Context) {
	resp, err := ac.announcementService.ListGeneralAnnouncements(c.Request.Context())
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateGeneralAnnouncement posts a platform-wide announcement.
func (ac *AnnouncementController) CreateGeneralAnnouncement(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if !bindJSON(c, &req, "Announcement text required") {
		return
	}
	resp, err := ac.announcementService.CreateGeneralAnnouncement(c.Request.Context(), &req)
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// DeleteGeneralAnnouncement removes a platform-wide announcement.
func (ac *AnnouncementController) DeleteGeneralAnnouncement(c *gin.Context) {
	id, ok := pathID(c, "id", "Announcement not found")
	if !ok {
		return
	}
	if err := ac.announcementService.DeleteGeneralAnnouncement(c.Request.Context(), id); err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Announcement deleted successfully"})
}
