package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/clubhub-app/clubhub-api/internal/app/models"
	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/pkg/apperrors"
)

// MemberService exposes the member directory and profile operations.
type MemberService interface {
	GetAllMembers(ctx context.Context) (*dto.MemberListResponse, error)
	GetMemberProfile(ctx context.Context, id int64) (*dto.MemberProfileResponse, error)
	UpdateMemberProfile(ctx context.Context, id int64, req *dto.UpdateMemberProfileRequest) (*dto.MemberProfileUpdatedResponse, error)
}

type memberService struct {
	memberRepo MemberRepository
	clubRepo   ClubRepository
	linkRepo   ClubMemberLinkRepository
}

// NewMemberService creates a new MemberService.
func NewMemberService(memberRepo MemberRepository, clubRepo ClubRepository, linkRepo ClubMemberLinkRepository) MemberService {
	return &memberService{memberRepo: memberRepo, clubRepo: clubRepo, linkRepo: linkRepo}
}

func (s *memberService) GetAllMembers(ctx context.Context) (*dto.MemberListResponse, error) {
	members, err := s.memberRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.MemberListResponse{Members: make([]dto.MemberSummary, 0, len(members))}
	for _, m := range members {
		resp.Members = append(resp.Members, dto.MemberSummary{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			StudentID: m.StudentID,
			Role:      m.Role,
		})
	}
	return resp, nil
}

// buildProfile assembles the profile shape with the effective role. Leading a
// club overrides the stored role for as long as the clubs row points at this
// member.
func (s *memberService) buildProfile(ctx context.Context, member *models.Member) (*dto.MemberProfile, error) {
	ledClub, err := s.clubRepo.FindByLeaderID(ctx, member.ID)
	if err != nil {
		return nil, err
	}
	role := member.Role
	if role == "" {
		role = "Member"
	}
	profile := &dto.MemberProfile{
		ID:        member.ID,
		Name:      member.Name,
		Username:  member.Username,
		Email:     member.Email,
		AboutMe:   member.AboutMe,
		YearSec:   member.YearSec,
		Course:    member.Course,
		Birthday:  member.Birthday,
		StudentID: member.StudentID,
		JoinedAt:  formatTimestamp(member.JoinedAt),
		Role:      role,
	}
	if ledClub != nil {
		profile.Role = "Leader"
		profile.LeaderOf = &ledClub.ID
	}
	return profile, nil
}

// GetMemberProfile returns the profile plus the clubs the member belongs to.
func (s *memberService) GetMemberProfile(ctx context.Context, id int64) (*dto.MemberProfileResponse, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperrors.NewResourceNotFoundError("Member not found")
	}
	profile, err := s.buildProfile(ctx, member)
	if err != nil {
		return nil, err
	}
	clubs, err := s.linkRepo.GetClubsByMemberID(ctx, id)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.MemberClubEntry, 0, len(clubs))
	for _, c := range clubs {
		entries = append(entries, dto.MemberClubEntry{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Image:       c.Image,
		})
	}
	return &dto.MemberProfileResponse{Member: *profile, Clubs: entries}, nil
}

// UpdateMemberProfile applies a coalesce-on-null update and returns the row
// as stored afterwards.
func (s *memberService) UpdateMemberProfile(ctx context.Context, id int64, req *dto.UpdateMemberProfileRequest) (*dto.MemberProfileUpdatedResponse, error) {
	updated, err := s.memberRepo.UpdateProfile(ctx, id,
		req.Name, req.Username, req.Email, req.AboutMe, req.YearSec, req.Course, req.Birthday)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NewResourceNotFoundError("Member not found")
	}
	profile, err := s.buildProfile(ctx, updated)
	if err != nil {
		return nil, err
	}
	log.Debug().Int64("memberID", id).Msg("Member profile updated")
	return &dto.MemberProfileUpdatedResponse{
		Message: "Profile updated successfully",
		Member:  *profile,
	}, nil
}
