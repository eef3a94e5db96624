package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/clubhub-app/clubhub-api/internal/app/models"
	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/pkg/apperrors"
)

// EventService implements event CRUD for both club-owned and platform-wide
// events.
type EventService interface {
	GetAllEvents(ctx context.Context) (*dto.EventListResponse, error)
	GetEventByID(ctx context.Context, id int64) (*dto.EventDetailResponse, error)
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventCreatedResponse, error)
	UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) error
	DeleteEvent(ctx context.Context, id int64) error
}

type eventService struct {
	eventRepo EventRepository
	clubRepo  ClubRepository
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo EventRepository, clubRepo ClubRepository) EventService {
	return &eventService{eventRepo: eventRepo, clubRepo: clubRepo}
}

func toEventResponse(e *models.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.EventDate,
		ClubID:      e.ClubID,
		ClubName:    e.ClubName,
	}
}

// GetAllEvents returns every event, oldest first, with the owning club's name
// joined in.
func (s *eventService) GetAllEvents(ctx context.Context) (*dto.EventListResponse, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.EventListResponse{Events: make([]dto.EventResponse, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, toEventResponse(e))
	}
	return resp, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id int64) (*dto.EventDetailResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.NewResourceNotFoundError("Event not found")
	}
	return &dto.EventDetailResponse{Event: toEventResponse(event)}, nil
}

// checkClubExists rejects club references to clubs that do not exist.
func (s *eventService) checkClubExists(ctx context.Context, clubID int64) error {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	if club == nil {
		return apperrors.NewResourceNotFoundError("Club not found")
	}
	return nil
}

// CreateEvent inserts an event. A supplied clubId must reference an existing
// club; absence of clubId makes the event platform-wide.
func (s *eventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventCreatedResponse, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.Date) == "" {
		return nil, apperrors.NewBadRequestError("Title, description, and date required")
	}
	if req.ClubID != nil {
		if err := s.checkClubExists(ctx, *req.ClubID); err != nil {
			return nil, err
		}
	}
	created, err := s.eventRepo.Create(ctx, &models.Event{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.Date,
		ClubID:      req.ClubID,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Int64("eventID", created.ID).Str("title", created.Title).Msg("Event created")

	resp := &dto.EventCreatedResponse{}
	resp.Event.ID = created.ID
	resp.Event.Title = created.Title
	resp.Event.Description = created.Description
	resp.Event.Date = created.EventDate
	resp.Event.ClubID = created.ClubID
	return resp, nil
}

// UpdateEvent applies a partial update; unset fields keep their stored values.
// A supplied clubId is validated the same way as on create.
func (s *eventService) UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return apperrors.NewResourceNotFoundError("Event not found")
	}
	if req.ClubID != nil {
		if err := s.checkClubExists(ctx, *req.ClubID); err != nil {
			return err
		}
	}
	return s.eventRepo.Update(ctx, id, req.Title, req.Description, req.Date, req.ClubID)
}

func (s *eventService) DeleteEvent(ctx context.Context, id int64) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return apperrors.NewResourceNotFoundError("Event not found")
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Int64("eventID", id).Msg("Event deleted")
	return nil
}
