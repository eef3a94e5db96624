package services

import (
	"context"
	"time"

	"github.com/clubhub-app/clubhub-api/internal/app/models"
)

// sqlDateTime is the rendering used for timestamps on the wire.
const sqlDateTime = "2006-01-02 15:04:05"

// Repository interfaces consumed by the services. The concrete
// implementations live in internal/app/repositories; tests substitute fakes.

// AdminUserRepository is the data access surface for administrative accounts.
type AdminUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	GetByID(ctx context.Context, id int64) (*models.AdminUser, error)
	GetAll(ctx context.Context) ([]*models.AdminUser, error)
	Update(ctx context.Context, id int64, email, password, role *string) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// MemberRepository is the data access surface for club members.
type MemberRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Member, error)
	GetByID(ctx context.Context, id int64) (*models.Member, error)
	GetAll(ctx context.Context) ([]*models.Member, error)
	Create(ctx context.Context, member *models.Member) (int64, error)
	UpdateProfile(ctx context.Context, id int64, name, username, email, aboutMe, yearSection, course, birthday *string) (*models.Member, error)
	Count(ctx context.Context) (int64, error)
}

// ClubRepository is the data access surface for clubs.
type ClubRepository interface {
	GetAll(ctx context.Context) ([]*models.Club, error)
	GetByID(ctx context.Context, id int64) (*models.Club, error)
	FindByLeaderID(ctx context.Context, memberID int64) (*models.Club, error)
	Create(ctx context.Context, club *models.Club) (*models.Club, error)
	Update(ctx context.Context, id int64, name, description, image *string, leaderID *int64) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// ClubMemberLinkRepository is the data access surface for membership links.
type ClubMemberLinkRepository interface {
	Add(ctx context.Context, clubID, memberID int64) error
	Remove(ctx context.Context, clubID, memberID int64) (int64, error)
	GetMembersByClubID(ctx context.Context, clubID int64) ([]*models.Member, error)
	GetClubIDsByMemberID(ctx context.Context, memberID int64) ([]int64, error)
	GetClubsByMemberID(ctx context.Context, memberID int64) ([]*models.Club, error)
}

// MembershipRepository is the data access surface for per-club membership plans.
type MembershipRepository interface {
	GetByClubID(ctx context.Context, clubID int64) (*models.MembershipPlan, error)
	Upsert(ctx context.Context, plan *models.MembershipPlan) error
}

// AnnouncementRepository is the data access surface for announcements.
type AnnouncementRepository interface {
	ListByClubID(ctx context.Context, clubID int64, limit uint64) ([]*models.Announcement, error)
	CreateForClub(ctx context.Context, clubID int64, text string) (*models.Announcement, error)
	DeleteForClub(ctx context.Context, clubID, announcementID int64) error
	ListGeneral(ctx context.Context) ([]*models.Announcement, error)
	CreateGeneral(ctx context.Context, text string) (*models.Announcement, error)
	DeleteGeneral(ctx context.Context, announcementID int64) error
}

// EventRepository is the data access surface for events.
type EventRepository interface {
	GetAll(ctx context.Context) ([]*models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	ListByClubID(ctx context.Context, clubID int64) ([]*models.Event, error)
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	Update(ctx context.Context, id int64, title, description, date *string, clubID *int64) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(sqlDateTime)
}
