package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/clubhub-app/clubhub-api/internal/app/models"
	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/pkg/apperrors"
	"github.com/clubhub-app/clubhub-api/internal/pkg/auth"
)

// AuthService resolves login credentials to an identity and registers members.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
}

type authService struct {
	adminRepo  AdminUserRepository
	memberRepo MemberRepository
	clubRepo   ClubRepository
	linkRepo   ClubMemberLinkRepository
	verifier   auth.CredentialVerifier
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	adminRepo AdminUserRepository,
	memberRepo MemberRepository,
	clubRepo ClubRepository,
	linkRepo ClubMemberLinkRepository,
	verifier auth.CredentialVerifier,
) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		memberRepo: memberRepo,
		clubRepo:   clubRepo,
		linkRepo:   linkRepo,
		verifier:   verifier,
	}
}

// Login checks the credentials against admin accounts first, then member
// accounts. A member who leads a club is reported as a Leader; the leader
// role is derived on every login rather than stored on the member row.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperrors.NewBadRequestError("Email and password required")
	}

	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin != nil && s.verifier.Verify(admin.Password, req.Password) {
		role := admin.Role
		if role == "" {
			role = "Admin"
		}
		log.Debug().Int64("userID", admin.ID).Msg("Admin login")
		return &dto.LoginResponse{User: dto.AdminIdentity{
			ID:    admin.ID,
			Email: admin.Email,
			Role:  role,
			Type:  "Admin",
		}}, nil
	}

	member, err := s.memberRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if member == nil || !s.verifier.Verify(member.Password, req.Password) {
		return nil, apperrors.NewUnauthorizedError("Invalid email or password")
	}

	identity, err := s.buildMemberIdentity(ctx, member)
	if err != nil {
		return nil, err
	}
	log.Debug().Int64("memberID", member.ID).Str("role", identity.Role).Msg("Member login")
	return &dto.LoginResponse{User: *identity}, nil
}

func (s *authService) buildMemberIdentity(ctx context.Context, member *models.Member) (*dto.MemberIdentity, error) {
	clubIDs, err := s.linkRepo.GetClubIDsByMemberID(ctx, member.ID)
	if err != nil {
		return nil, err
	}
	if clubIDs == nil {
		clubIDs = []int64{}
	}

	ledClub, err := s.clubRepo.FindByLeaderID(ctx, member.ID)
	if err != nil {
		return nil, err
	}

	role := member.Role
	if role == "" {
		role = "Member"
	}
	identity := &dto.MemberIdentity{
		ID:        member.ID,
		Name:      member.Name,
		Email:     member.Email,
		StudentID: member.StudentID,
		Role:      role,
		Clubs:     clubIDs,
		Type:      "Member",
	}
	if ledClub != nil {
		identity.Role = "Leader"
		identity.Type = "Leader"
		identity.LeaderOf = &ledClub.ID
	}
	return identity, nil
}

// Register creates a member account. Duplicate email or student id surfaces
// as a conflict.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.StudentID) == "" ||
		strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, apperrors.NewBadRequestError("All fields are required")
	}

	hashed, err := s.verifier.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "Member"
	}
	member := &models.Member{
		StudentID: strings.TrimSpace(req.StudentID),
		Email:     strings.TrimSpace(req.Email),
		Password:  hashed,
		Name:      strings.TrimSpace(req.Name),
		Role:      role,
	}

	id, err := s.memberRepo.Create(ctx, member)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateAccount) {
			return nil, apperrors.NewConflictError("Email or Student ID already registered")
		}
		return nil, err
	}

	log.Info().Int64("memberID", id).Str("email", member.Email).Msg("Member registered")
	return &dto.RegisterResponse{
		Message: "Signup successful!",
		Member: dto.MemberSummary{
			ID:        id,
			Name:      member.Name,
			Email:     member.Email,
			StudentID: member.StudentID,
			Role:      member.Role,
		},
	}, nil
}
