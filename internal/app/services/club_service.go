package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/clubhub-app/clubhub-api/internal/app/models"
	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/pkg/apperrors"
)

// clubDetailAnnouncementLimit caps the announcements embedded in a club
// response; the dedicated announcements route returns the full history.
const clubDetailAnnouncementLimit = 10

// ClubService implements club CRUD and the membership link operations.
type ClubService interface {
	GetAllClubs(ctx context.Context) (*dto.ClubListResponse, error)
	GetClubByID(ctx context.Context, id int64) (*dto.ClubDetailResponse, error)
	CreateClub(ctx context.Context, req *dto.CreateClubRequest) (*dto.ClubDetailResponse, error)
	UpdateClub(ctx context.Context, id int64, req *dto.UpdateClubRequest) error
	DeleteClub(ctx context.Context, id int64) error
	JoinClub(ctx context.Context, clubID, memberID int64) error
	LeaveClub(ctx context.Context, clubID, memberID int64) error
	RemoveMember(ctx context.Context, clubID, memberID int64) error
}

type clubService struct {
	clubRepo         ClubRepository
	linkRepo         ClubMemberLinkRepository
	announcementRepo AnnouncementRepository
	eventRepo        EventRepository
}

// NewClubService creates a new ClubService.
func NewClubService(
	clubRepo ClubRepository,
	linkRepo ClubMemberLinkRepository,
	announcementRepo AnnouncementRepository,
	eventRepo EventRepository,
) ClubService {
	return &clubService{
		clubRepo:         clubRepo,
		linkRepo:         linkRepo,
		announcementRepo: announcementRepo,
		eventRepo:        eventRepo,
	}
}

// buildClubResponse gathers a club's members, recent announcements and events
// into the detail shape. All three collections serialize as arrays even when
// empty.
func (s *clubService) buildClubResponse(ctx context.Context, club *models.Club) (*dto.ClubResponse, error) {
	members, err := s.linkRepo.GetMembersByClubID(ctx, club.ID)
	if err != nil {
		return nil, err
	}
	announcements, err := s.announcementRepo.ListByClubID(ctx, club.ID, clubDetailAnnouncementLimit)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListByClubID(ctx, club.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ClubResponse{
		ID:            club.ID,
		Name:          club.Name,
		Description:   club.Description,
		Image:         club.Image,
		AdminID:       club.AdminID,
		LeaderID:      club.LeaderID,
		Members:       make([]dto.ClubMemberEntry, 0, len(members)),
		Announcements: make([]dto.AnnouncementEntry, 0, len(announcements)),
		Events:        make([]dto.ClubEventEntry, 0, len(events)),
	}
	for _, m := range members {
		role := m.Role
		if club.LeaderID != nil && *club.LeaderID == m.ID {
			role = "Leader"
		}
		resp.Members = append(resp.Members, dto.ClubMemberEntry{ID: m.ID, Name: m.Name, Role: role})
	}
	for _, a := range announcements {
		resp.Announcements = append(resp.Announcements, dto.AnnouncementEntry{
			ID:   a.ID,
			Text: a.Text,
			Date: formatTimestamp(a.CreatedAt),
		})
	}
	for _, e := range events {
		resp.Events = append(resp.Events, dto.ClubEventEntry{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Date:        e.EventDate,
		})
	}
	return resp, nil
}

// GetAllClubs returns every club with its sub-resources gathered.
func (s *clubService) GetAllClubs(ctx context.Context) (*dto.ClubListResponse, error) {
	clubs, err := s.clubRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.ClubListResponse{Clubs: make([]dto.ClubResponse, 0, len(clubs))}
	for _, club := range clubs {
		cr, err := s.buildClubResponse(ctx, club)
		if err != nil {
			return nil, err
		}
		resp.Clubs = append(resp.Clubs, *cr)
	}
	return resp, nil
}

// GetClubByID returns one club with its sub-resources gathered.
func (s *clubService) GetClubByID(ctx context.Context, id int64) (*dto.ClubDetailResponse, error) {
	club, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, apperrors.NewResourceNotFoundError("Club not found")
	}
	cr, err := s.buildClubResponse(ctx, club)
	if err != nil {
		return nil, err
	}
	return &dto.ClubDetailResponse{Club: *cr}, nil
}

// CreateClub inserts a club. Only the name is required.
func (s *clubService) CreateClub(ctx context.Context, req *dto.CreateClubRequest) (*dto.ClubDetailResponse, error) {
	if req.Name == "" {
		return nil, apperrors.NewBadRequestError("Club name is required")
	}
	club, err := s.clubRepo.Create(ctx, &models.Club{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		AdminID:     req.AdminID,
		LeaderID:    req.LeaderID,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Int64("clubID", club.ID).Str("name", club.Name).Msg("Club created")
	return &dto.ClubDetailResponse{Club: dto.ClubResponse{
		ID:            club.ID,
		Name:          club.Name,
		Description:   club.Description,
		Image:         club.Image,
		AdminID:       club.AdminID,
		LeaderID:      club.LeaderID,
		Members:       []dto.ClubMemberEntry{},
		Announcements: []dto.AnnouncementEntry{},
		Events:        []dto.ClubEventEntry{},
	}}, nil
}

// UpdateClub applies a partial update; unset fields keep their stored values.
func (s *clubService) UpdateClub(ctx context.Context, id int64, req *dto.UpdateClubRequest) error {
	if !req.HasChanges() {
		return apperrors.NewBadRequestError("At least one field required")
	}
	club, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if club == nil {
		return apperrors.NewResourceNotFoundError("Club not found")
	}
	return s.clubRepo.Update(ctx, id, req.Name, req.Description, req.Image, req.LeaderID)
}

// DeleteClub removes a club; links, announcements, the membership plan and
// club events go with it.
func (s *clubService) DeleteClub(ctx context.Context, id int64) error {
	club, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if club == nil {
		return apperrors.NewResourceNotFoundError("Club not found")
	}
	if err := s.clubRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Int64("clubID", id).Msg("Club deleted")
	return nil
}

// JoinClub links a member to a club. The unique index on (club_id, member_id)
// makes a concurrent duplicate join surface as a conflict, not a second row.
func (s *clubService) JoinClub(ctx context.Context, clubID, memberID int64) error {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	if club == nil {
		return apperrors.NewResourceNotFoundError("Club not found")
	}
	if err := s.linkRepo.Add(ctx, clubID, memberID); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyMember) {
			return apperrors.NewConflictError("Already a member of this club")
		}
		return err
	}
	log.Debug().Int64("clubID", clubID).Int64("memberID", memberID).Msg("Member joined club")
	return nil
}

// LeaveClub removes the member's own link. The single DELETE doubles as the
// membership check: zero rows affected means there was nothing to leave.
func (s *clubService) LeaveClub(ctx context.Context, clubID, memberID int64) error {
	affected, err := s.linkRepo.Remove(ctx, clubID, memberID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError("Not a member of this club")
	}
	log.Debug().Int64("clubID", clubID).Int64("memberID", memberID).Msg("Member left club")
	return nil
}

// RemoveMember deletes a member's link on a leader's or admin's behalf. The
// removal succeeds regardless of whether a link existed.
func (s *clubService) RemoveMember(ctx context.Context, clubID, memberID int64) error {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	if club == nil {
		return apperrors.NewResourceNotFoundError("Club not found")
	}
	if _, err := s.linkRepo.Remove(ctx, clubID, memberID); err != nil {
		return err
	}
	log.Debug().Int64("clubID", clubID).Int64("memberID", memberID).Msg("Member removed from club")
	return nil
}
