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

func newAuthServiceForTest(adminRepo *fakeAdminUserRepo, memberRepo *fakeMemberRepo, clubRepo *fakeClubRepo, linkRepo *fakeLinkRepo) AuthService {
	return NewAuthService(adminRepo, memberRepo, clubRepo, linkRepo, auth.PlaintextVerifier{})
}

func TestAuthServiceLogin_AdminFirst(t *testing.T) {
	adminRepo := &fakeAdminUserRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*models.AdminUser, error) {
			return &models.AdminUser{ID: 1, Email: email, Password: "pass", Role: "Admin", CreatedAt: time.Now()}, nil
		},
	}
	// Member lookup must never run when the admin credential matches
	memberRepo := &fakeMemberRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*models.Member, error) {
			t.Fatal("member lookup should not happen for an admin login")
			return nil, nil
		},
	}
	svc := newAuthServiceForTest(adminRepo, memberRepo, &fakeClubRepo{}, &fakeLinkRepo{})

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "admin@x.io", Password: "pass"})
	require.NoError(t, err)

	identity, ok := resp.User.(dto.AdminIdentity)
	require.True(t, ok)
	assert.Equal(t, int64(1), identity.ID)
	assert.Equal(t, "Admin", identity.Role)
	assert.Equal(t, "Admin", identity.Type)
}

func TestAuthServiceLogin_MemberWithClubs(t *testing.T) {
	adminRepo := &fakeAdminUserRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*models.AdminUser, error) {
			return nil, nil
		},
	}
	memberRepo := &fakeMemberRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*models.Member, error) {
			return &models.Member{ID: 7, Name: "Ana", Email: email, Password: "pw", StudentID: "S-100", Role: "Member"}, nil
		},
	}
	clubRepo := &fakeClubRepo{
		FindByLeaderIDFn: func(ctx context.Context, memberID int64) (*models.Club, error) {
			return nil, nil
		},
	}
	linkRepo := &fakeLinkRepo{
		GetClubIDsByMemberIDFn: func(ctx context.Context, memberID int64) ([]int64, error) {
			return []int64{3, 5}, nil
		},
	}
	svc := newAuthServiceForTest(adminRepo, memberRepo, clubRepo, linkRepo)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ana@x.io", Password: "pw"})
	require.NoError(t, err)

	identity, ok := resp.User.(dto.MemberIdentity)
	require.True(t, ok)
	assert.Equal(t, int64(7), identity.ID)
	assert.Equal(t, "Member", identity.Role)
	assert.Equal(t, "Member", identity.Type)
	assert.Equal(t, []int64{3, 5}, identity.Clubs)
	assert.Nil(t, identity.LeaderOf)
}

func TestAuthServiceLogin_LeaderRoleDerived(t *testing.T) {
	adminRepo := &fakeAdminUserRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*models.AdminUser, error) {
			return nil, nil
		},
	}
	memberRepo := &fakeMemberRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*models.Member, error) {
			// Stored role says Member; leadership must override it
			return &models.Member{ID: 9, Name: "Leo", Email: email, Password: "pw", Role: "Member"}, nil
		},
	}
	clubRepo := &fakeClubRepo{
		FindByLeaderIDFn: func(ctx context.Context, memberID int64) (*models.Club, error) {
			return &models.Club{ID: 42, Name: "Chess"}, nil
		},
	}
	linkRepo := &fakeLinkRepo{
		GetClubIDsByMemberIDFn: func(ctx context.Context, memberID int64) ([]int64, error) {
			return nil, nil
		},
	}
	svc := newAuthServiceForTest(adminRepo, memberRepo, clubRepo, linkRepo)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "leo@x.io", Password: "pw"})
	require.NoError(t, err)

	identity, ok := resp.User.(dto.MemberIdentity)
	require.True(t, ok)
	assert.Equal(t, "Leader", identity.Role)
	assert.Equal(t, "Leader", identity.Type)
	require.NotNil(t, identity.LeaderOf)
	assert.Equal(t, int64(42), *identity.LeaderOf)
	// An empty club set still serializes as [], not null
	assert.NotNil(t, identity.Clubs)
	assert.Empty(t, identity.Clubs)
}

func TestAuthServiceLogin_Failures(t *testing.T) {
	adminRepo := &fakeAdminUserRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*models.AdminUser, error) {
			return nil, nil
		},
	}
	memberRepo := &fakeMemberRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*models.Member, error) {
			if email == "known@x.io" {
				return &models.Member{ID: 1, Email: email, Password: "right"}, nil
			}
			return nil, nil
		},
	}
	svc := newAuthServiceForTest(adminRepo, memberRepo, &fakeClubRepo{}, &fakeLinkRepo{})

	tests := []struct {
		name     string
		req      *dto.LoginRequest
		sentinel error
	}{
		{name: "missing email", req: &dto.LoginRequest{Password: "x"}, sentinel: apperrors.ErrBadRequest},
		{name: "missing password", req: &dto.LoginRequest{Email: "a@b.c"}, sentinel: apperrors.ErrBadRequest},
		{name: "unknown account", req: &dto.LoginRequest{Email: "ghost@x.io", Password: "x"}, sentinel: apperrors.ErrInvalidCredentials},
		{name: "wrong password", req: &dto.LoginRequest{Email: "known@x.io", Password: "wrong"}, sentinel: apperrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))
		})
	}
}

func TestAuthServiceRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		memberRepo := &fakeMemberRepo{
			CreateFn: func(ctx context.Context, member *models.Member) (int64, error) {
				assert.Equal(t, "Ana", member.Name)
				assert.Equal(t, "Member", member.Role)
				assert.Nil(t, member.ClubID)
				return 11, nil
			},
		}
		svc := newAuthServiceForTest(&fakeAdminUserRepo{}, memberRepo, &fakeClubRepo{}, &fakeLinkRepo{})

		resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Name: "Ana", StudentID: "S-1", Email: "ana@x.io", Password: "pw",
		})
		require.NoError(t, err)
		assert.Equal(t, "Signup successful!", resp.Message)
		assert.Equal(t, int64(11), resp.Member.ID)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := newAuthServiceForTest(&fakeAdminUserRepo{}, &fakeMemberRepo{}, &fakeClubRepo{}, &fakeLinkRepo{})
		_, err := svc.Register(context.Background(), &dto.RegisterRequest{Name: "Ana", Email: "ana@x.io"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
	})

	t.Run("duplicate account", func(t *testing.T) {
		memberRepo := &fakeMemberRepo{
			CreateFn: func(ctx context.Context, member *models.Member) (int64, error) {
				return 0, apperrors.ErrDuplicateAccount
			},
		}
		svc := newAuthServiceForTest(&fakeAdminUserRepo{}, memberRepo, &fakeClubRepo{}, &fakeLinkRepo{})
		_, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Name: "Ana", StudentID: "S-1", Email: "ana@x.io", Password: "pw",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrConflict))
		assert.Equal(t, "Email or Student ID already registered", err.Error())
	})
}
