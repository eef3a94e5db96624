package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/clubhub-app/clubhub-api/internal/app/models"
	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/pkg/apperrors"
	"github.com/clubhub-app/clubhub-api/internal/pkg/dberrors"
)

// MembershipService reads and saves a club's membership program.
type MembershipService interface {
	// GetPlan returns nil when the club has no plan yet; the controller
	// renders that as an empty object.
	GetPlan(ctx context.Context, clubID int64) (*dto.MembershipPlanResponse, error)
	SavePlan(ctx context.Context, clubID int64, req *dto.MembershipPlanRequest) error
}

type membershipService struct {
	membershipRepo MembershipRepository
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(membershipRepo MembershipRepository) MembershipService {
	return &membershipService{membershipRepo: membershipRepo}
}

func (s *membershipService) GetPlan(ctx context.Context, clubID int64) (*dto.MembershipPlanResponse, error) {
	plan, err := s.membershipRepo.GetByClubID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, nil
	}
	return &dto.MembershipPlanResponse{
		ID:          plan.ID,
		ClubID:      plan.ClubID,
		Name:        plan.Name,
		Number:      plan.Number,
		Description: plan.Description,
		Image:       plan.Image,
	}, nil
}

// SavePlan upserts the club's single plan row. The unique index on club_id
// collapses concurrent saves into one row, last write winning.
func (s *membershipService) SavePlan(ctx context.Context, clubID int64, req *dto.MembershipPlanRequest) error {
	err := s.membershipRepo.Upsert(ctx, &models.MembershipPlan{
		ClubID:      clubID,
		Name:        req.Name,
		Number:      req.Number,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceNotFoundError("Club not found")
		}
		return err
	}
	log.Debug().Int64("clubID", clubID).Msg("Membership plan saved")
	return nil
}
