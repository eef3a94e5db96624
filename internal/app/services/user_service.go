package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/clubhub-app/clubhub-api/internal/app/models"
	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/pkg/apperrors"
	"github.com/clubhub-app/clubhub-api/internal/pkg/auth"
)

// UserService manages administrative accounts.
type UserService interface {
	GetAllUsers(ctx context.Context) (*dto.UserListResponse, error)
	GetUserByID(ctx context.Context, id int64) (*dto.UserDetailResponse, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) error
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	adminRepo AdminUserRepository
	verifier  auth.CredentialVerifier
}

// NewUserService creates a new UserService.
func NewUserService(adminRepo AdminUserRepository, verifier auth.CredentialVerifier) UserService {
	return &userService{adminRepo: adminRepo, verifier: verifier}
}

func toUserResponse(u *models.AdminUser) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: formatTimestamp(u.CreatedAt),
	}
}

func (s *userService) GetAllUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := s.adminRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.UserListResponse{Users: make([]dto.UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, toUserResponse(u))
	}
	return resp, nil
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*dto.UserDetailResponse, error) {
	user, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewResourceNotFoundError("User not found")
	}
	resp := toUserResponse(user)
	return &dto.UserDetailResponse{User: resp}, nil
}

func validRole(role string) bool {
	switch role {
	case "Admin", "Leader", "Member":
		return true
	}
	return false
}

// UpdateUser applies a partial update. A supplied role must be Admin, Leader
// or Member; a supplied password is stored through the credential verifier.
func (s *userService) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) error {
	if req.Role != nil && !validRole(*req.Role) {
		return apperrors.NewBadRequestError("Invalid role")
	}
	user, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NewResourceNotFoundError("User not found")
	}

	password := req.Password
	if password != nil {
		hashed, err := s.verifier.Hash(*password)
		if err != nil {
			return err
		}
		password = &hashed
	}
	if err := s.adminRepo.Update(ctx, id, req.Email, password, req.Role); err != nil {
		return err
	}
	log.Info().Int64("userID", id).Msg("User updated")
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NewResourceNotFoundError("User not found")
	}
	if err := s.adminRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Int64("userID", id).Msg("User deleted")
	return nil
}
