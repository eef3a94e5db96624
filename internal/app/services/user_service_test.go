package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhub-app/clubhub-api/internal/app/models"
	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
	"github.com/clubhub-app/clubhub-api/internal/pkg/apperrors"
	"github.com/clubhub-app/clubhub-api/internal/pkg/auth"
)

func TestUserServiceGetUserByID(t *testing.T) {
	repo := &fakeAdminUserRepo{
		GetByIDFn: func(ctx context.Context, id int64) (*models.AdminUser, error) {
			if id == 1 {
				return &models.AdminUser{
					ID: 1, Email: "admin@x.io", Role: "Admin",
					CreatedAt: time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC),
				}, nil
			}
			return nil, nil
		},
	}
	svc := NewUserService(repo, auth.PlaintextVerifier{})

	t.Run("found", func(t *testing.T) {
		resp, err := svc.GetUserByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "admin@x.io", resp.User.Email)
		assert.Equal(t, "2026-01-15 08:30:00", resp.User.CreatedAt)
	})

	t.Run("missing is a 404", func(t *testing.T) {
		_, err := svc.GetUserByID(context.Background(), 2)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
		assert.Equal(t, "User not found", err.Error())
	})
}

func TestUserServiceUpdateUser(t *testing.T) {
	existing := &models.AdminUser{ID: 1, Email: "admin@x.io", Role: "Admin"}

	t.Run("invalid role", func(t *testing.T) {
		svc := NewUserService(&fakeAdminUserRepo{}, auth.PlaintextVerifier{})
		err := svc.UpdateUser(context.Background(), 1, &dto.UpdateUserRequest{Role: ptrString("Owner")})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
		assert.Equal(t, "Invalid role", err.Error())
	})

	t.Run("password stored through verifier", func(t *testing.T) {
		repo := &fakeAdminUserRepo{
			GetByIDFn: func(ctx context.Context, id int64) (*models.AdminUser, error) { return existing, nil },
			UpdateFn: func(ctx context.Context, id int64, email, password, role *string) error {
				assert.Nil(t, email)
				require.NotNil(t, password)
				assert.Equal(t, "newpass", *password) // plaintext scheme stores as-is
				require.NotNil(t, role)
				assert.Equal(t, "Leader", *role)
				return nil
			},
		}
		svc := NewUserService(repo, auth.PlaintextVerifier{})
		err := svc.UpdateUser(context.Background(), 1, &dto.UpdateUserRequest{
			Password: ptrString("newpass"),
			Role:     ptrString("Leader"),
		})
		require.NoError(t, err)
	})

	t.Run("missing user", func(t *testing.T) {
		repo := &fakeAdminUserRepo{
			GetByIDFn: func(ctx context.Context, id int64) (*models.AdminUser, error) { return nil, nil },
		}
		svc := NewUserService(repo, auth.PlaintextVerifier{})
		err := svc.UpdateUser(context.Background(), 9, &dto.UpdateUserRequest{Email: ptrString("x@y.z")})
		assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
	})
}

func TestUserServiceDeleteUser(t *testing.T) {
	deleted := false
	repo := &fakeAdminUserRepo{
		GetByIDFn: func(ctx context.Context, id int64) (*models.AdminUser, error) {
			if id == 1 {
				return &models.AdminUser{ID: 1}, nil
			}
			return nil, nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}
	svc := NewUserService(repo, auth.PlaintextVerifier{})

	require.NoError(t, svc.DeleteUser(context.Background(), 1))
	assert.True(t, deleted)

	err := svc.DeleteUser(context.Background(), 2)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}
