package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/app/services"
	"github.com/clubhub-app/clubhub-api/internal/middleware"
)

// EventController handles event CRUD.
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController.
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// GetEvents lists every event, oldest first.
func (ec *EventController) GetEvents(c *gin.Context) {
	resp, err := ec.eventService.GetAllEvents(c.Request.Context())
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetEvent returns a single event.
func (ec *EventController) GetEvent(c *gin.Context) {
	id, ok := pathID(c, "id", "Event not found")
	if !ok {
		return
	}
	resp, err := ec.eventService.GetEventByID(c.Request.Context(), id)
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateEvent creates a club-owned or platform-wide event.
func (ec *EventController) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if !bindJSON(c, &req, "Title, description, and date required") {
		return
	}
	resp, err := ec.eventService.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateEvent applies a partial update to an event.
func (ec *EventController) UpdateEvent(c *gin.Context) {
	id, ok := pathID(c, "id", "Event not found")
	if !ok {
		return
	}
	var req dto.UpdateEventRequest
	if !bindJSON(c, &req, "Invalid request body") {
		return
	}
	if err := ec.eventService.UpdateEvent(c.Request.Context(), id, &req); err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Event updated successfully"})
}

// DeleteEvent removes an event.
func (ec *EventController) DeleteEvent(c *gin.Context) {
	id, ok := pathID(c, "id", "Event not found")
	if !ok {
		return
	}
	if err := ec.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		middleware.RenderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Event deleted successfully"})
}
