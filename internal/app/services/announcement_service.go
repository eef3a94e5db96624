package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/clubhub-app/clubhub-api/internal/app/models"
	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/pkg/apperrors"
)

// AnnouncementService covers club-scoped and platform-wide announcements.
type AnnouncementService interface {
	ListClubAnnouncements(ctx context.Context, clubID int64) (*dto.AnnouncementListResponse, error)
	CreateClubAnnouncement(ctx context.Context, clubID int64, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementCreatedResponse, error)
	DeleteClubAnnouncement(ctx context.Context, clubID, announcementID int64) error
	ListGeneralAnnouncements(ctx context.Context) (*dto.AnnouncementListResponse, error)
	CreateGeneralAnnouncement(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementCreatedResponse, error)
	DeleteGeneralAnnouncement(ctx context.Context, announcementID int64) error
}

type announcementService struct {
	announcementRepo AnnouncementRepository
	clubRepo         ClubRepository
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(announcementRepo AnnouncementRepository, clubRepo ClubRepository) AnnouncementService {
	return &announcementService{announcementRepo: announcementRepo, clubRepo: clubRepo}
}

func toAnnouncementEntries(rows []*models.Announcement) []dto.AnnouncementEntry {
	entries := make([]dto.AnnouncementEntry, 0, len(rows))
	for _, a := range rows {
		entries = append(entries, dto.AnnouncementEntry{
			ID:   a.ID,
			Text: a.Text,
			Date: formatTimestamp(a.CreatedAt),
		})
	}
	return entries
}

// ListClubAnnouncements returns the club's full history, newest first. An
// unknown club yields an empty list rather than a 404.
func (s *announcementService) ListClubAnnouncements(ctx context.Context, clubID int64) (*dto.AnnouncementListResponse, error) {
	rows, err := s.announcementRepo.ListByClubID(ctx, clubID, 0)
	if err != nil {
		return nil, err
	}
	return &dto.AnnouncementListResponse{Announcements: toAnnouncementEntries(rows)}, nil
}

func (s *announcementService) CreateClubAnnouncement(ctx context.Context, clubID int64, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementCreatedResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.NewBadRequestError("Announcement text required")
	}
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, apperrors.NewResourceNotFoundError("Club not found")
	}
	created, err := s.announcementRepo.CreateForClub(ctx, clubID, req.Text)
	if err != nil {
		return nil, err
	}
	log.Debug().Int64("clubID", clubID).Int64("announcementID", created.ID).Msg("Club announcement created")
	return &dto.AnnouncementCreatedResponse{Announcement: dto.AnnouncementEntry{
		ID:   created.ID,
		Text: created.Text,
		Date: formatTimestamp(created.CreatedAt),
	}}, nil
}

// DeleteClubAnnouncement is idempotent; deleting an id that is already gone
// still reports success.
func (s *announcementService) DeleteClubAnnouncement(ctx context.Context, clubID, announcementID int64) error {
	return s.announcementRepo.DeleteForClub(ctx, clubID, announcementID)
}

func (s *announcementService) ListGeneralAnnouncements(ctx context.Context) (*dto.AnnouncementListResponse, error) {
	rows, err := s.announcementRepo.ListGeneral(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AnnouncementListResponse{Announcements: toAnnouncementEntries(rows)}, nil
}

func (s *announcementService) CreateGeneralAnnouncement(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementCreatedResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.NewBadRequestError("Announcement text required")
	}
	created, err := s.announcementRepo.CreateGeneral(ctx, req.Text)
	if err != nil {
		return nil, err
	}
	log.Debug().Int64("announcementID", created.ID).Msg("General announcement created")
	return &dto.AnnouncementCreatedResponse{Announcement: dto.AnnouncementEntry{
		ID:   created.ID,
		Text: created.Text,
		Date: formatTimestamp(created.CreatedAt),
	}}, nil
}

func (s *announcementService) DeleteGeneralAnnouncement(ctx context.Context, announcementID int64) error {
	return s.announcementRepo.DeleteGeneral(ctx, announcementID)
}
