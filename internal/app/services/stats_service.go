package services

import (
	"context"

	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
)

// StatsService reports live platform counts.
type StatsService interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type statsService struct {
	clubRepo   ClubRepository
	memberRepo MemberRepository
	eventRepo  EventRepository
	adminRepo  AdminUserRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(
	clubRepo ClubRepository,
	memberRepo MemberRepository,
	eventRepo EventRepository,
	adminRepo AdminUserRepository,
) StatsService {
	return &statsService{
		clubRepo:   clubRepo,
		memberRepo: memberRepo,
		eventRepo:  eventRepo,
		adminRepo:  adminRepo,
	}
}

func (s *statsService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	clubs, err := s.clubRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.memberRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.adminRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{Stats: dto.PlatformStats{
		TotalClubs:   clubs,
		TotalMembers: members,
		TotalEvents:  events,
		TotalUsers:   users,
	}}, nil
}
