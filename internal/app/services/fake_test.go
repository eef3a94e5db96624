package services

import (
	"context"
	"errors"

	"github.com/clubhub-app/clubhub-api/internal/app/models"
)

// errNotStubbed flags a fake method the test forgot to set up.
var errNotStubbed = errors.New("fake: method not stubbed")

type fakeAdminUserRepo struct {
	FindByEmailFn func(ctx context.Context, email string) (*models.AdminUser, error)
	GetByIDFn     func(ctx context.Context, id int64) (*models.AdminUser, error)
	GetAllFn      func(ctx context.Context) ([]*models.AdminUser, error)
	UpdateFn      func(ctx context.Context, id int64, email, password, role *string) error
	DeleteFn      func(ctx context.Context, id int64) error
	CountFn       func(ctx context.Context) (int64, error)
}

func (f *fakeAdminUserRepo) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	if f.FindByEmailFn == nil {
		return nil, errNotStubbed
	}
	return f.FindByEmailFn(ctx, email)
}

func (f *fakeAdminUserRepo) GetByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	if f.GetByIDFn == nil {
		return nil, errNotStubbed
	}
	return f.GetByIDFn(ctx, id)
}

func (f *fakeAdminUserRepo) GetAll(ctx context.Context) ([]*models.AdminUser, error) {
	if f.GetAllFn == nil {
		return nil, errNotStubbed
	}
	return f.GetAllFn(ctx)
}

func (f *fakeAdminUserRepo) Update(ctx context.Context, id int64, email, password, role *string) error {
	if f.UpdateFn == nil {
		return errNotStubbed
	}
	return f.UpdateFn(ctx, id, email, password, role)
}

func (f *fakeAdminUserRepo) Delete(ctx context.Context, id int64) error {
	if f.DeleteFn == nil {
		return errNotStubbed
	}
	return f.DeleteFn(ctx, id)
}

func (f *fakeAdminUserRepo) Count(ctx context.Context) (int64, error) {
	if f.CountFn == nil {
		return 0, errNotStubbed
	}
	return f.CountFn(ctx)
}

type fakeMemberRepo struct {
	FindByEmailFn   func(ctx context.Context, email string) (*models.Member, error)
	GetByIDFn       func(ctx context.Context, id int64) (*models.Member, error)
	GetAllFn        func(ctx context.Context) ([]*models.Member, error)
	CreateFn        func(ctx context.Context, member *models.Member) (int64, error)
	UpdateProfileFn func(ctx context.Context, id int64, name, username, email, aboutMe, yearSection, course, birthday *string) (*models.Member, error)
	CountFn         func(ctx context.Context) (int64, error)
}

func (f *fakeMemberRepo) FindByEmail(ctx context.Context, email string) (*models.Member, error) {
	if f.FindByEmailFn == nil {
		return nil, errNotStubbed
	}
	return f.FindByEmailFn(ctx, email)
}

func (f *fakeMemberRepo) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	if f.GetByIDFn == nil {
		return nil, errNotStubbed
	}
	return f.GetByIDFn(ctx, id)
}

func (f *fakeMemberRepo) GetAll(ctx context.Context) ([]*models.Member, error) {
	if f.GetAllFn == nil {
		return nil, errNotStubbed
	}
	return f.GetAllFn(ctx)
}

func (f *fakeMemberRepo) Create(ctx context.Context, member *models.Member) (int64, error) {
	if f.CreateFn == nil {
		return 0, errNotStubbed
	}
	return f.CreateFn(ctx, member)
}

func (f *fakeMemberRepo) UpdateProfile(ctx context.Context, id int64, name, username, email, aboutMe, yearSection, course, birthday *string) (*models.Member, error) {
	if f.UpdateProfileFn == nil {
		return nil, errNotStubbed
	}
	return f.UpdateProfileFn(ctx, id, name, username, email, aboutMe, yearSection, course, birthday)
}

func (f *fakeMemberRepo) Count(ctx context.Context) (int64, error) {
	if f.CountFn == nil {
		return 0, errNotStubbed
	}
	return f.CountFn(ctx)
}

type fakeClubRepo struct {
	GetAllFn         func(ctx context.Context) ([]*models.Club, error)
	GetByIDFn        func(ctx context.Context, id int64) (*models.Club, error)
	FindByLeaderIDFn func(ctx context.Context, memberID int64) (*models.Club, error)
	CreateFn         func(ctx context.Context, club *models.Club) (*models.Club, error)
	UpdateFn         func(ctx context.Context, id int64, name, description, image *string, leaderID *int64) error
	DeleteFn         func(ctx context.Context, id int64) error
	CountFn          func(ctx context.Context) (int64, error)
}

func (f *fakeClubRepo) GetAll(ctx context.Context) ([]*models.Club, error) {
	if f.GetAllFn == nil {
		return nil, errNotStubbed
	}
	return f.GetAllFn(ctx)
}

func (f *fakeClubRepo) GetByID(ctx context.Context, id int64) (*models.Club, error) {
	if f.GetByIDFn == nil {
		return nil, errNotStubbed
	}
	return f.GetByIDFn(ctx, id)
}

func (f *fakeClubRepo) FindByLeaderID(ctx context.Context, memberID int64) (*models.Club, error) {
	if f.FindByLeaderIDFn == nil {
		return nil, errNotStubbed
	}
	return f.FindByLeaderIDFn(ctx, memberID)
}

func (f *fakeClubRepo) Create(ctx context.Context, club *models.Club) (*models.Club, error) {
	if f.CreateFn == nil {
		return nil, errNotStubbed
	}
	return f.CreateFn(ctx, club)
}

func (f *fakeClubRepo) Update(ctx context.Context, id int64, name, description, image *string, leaderID *int64) error {
	if f.UpdateFn == nil {
		return errNotStubbed
	}
	return f.UpdateFn(ctx, id, name, description, image, leaderID)
}

func (f *fakeClubRepo) Delete(ctx context.Context, id int64) error {
	if f.DeleteFn == nil {
		return errNotStubbed
	}
	return f.DeleteFn(ctx, id)
}

func (f *fakeClubRepo) Count(ctx context.Context) (int64, error) {
	if f.CountFn == nil {
		return 0, errNotStubbed
	}
	return f.CountFn(ctx)
}

type fakeLinkRepo struct {
	AddFn                  func(ctx context.Context, clubID, memberID int64) error
	RemoveFn               func(ctx context.Context, clubID, memberID int64) (int64, error)
	GetMembersByClubIDFn   func(ctx context.Context, clubID int64) ([]*models.Member, error)
	GetClubIDsByMemberIDFn func(ctx context.Context, memberID int64) ([]int64, error)
	GetClubsByMemberIDFn   func(ctx context.Context, memberID int64) ([]*models.Club, error)
}

func (f *fakeLinkRepo) Add(ctx context.Context, clubID, memberID int64) error {
	if f.AddFn == nil {
		return errNotStubbed
	}
	return f.AddFn(ctx, clubID, memberID)
}

func (f *fakeLinkRepo) Remove(ctx context.Context, clubID, memberID int64) (int64, error) {
	if f.RemoveFn == nil {
		return 0, errNotStubbed
	}
	return f.RemoveFn(ctx, clubID, memberID)
}

func (f *fakeLinkRepo) GetMembersByClubID(ctx context.Context, clubID int64) ([]*models.Member, error) {
	if f.GetMembersByClubIDFn == nil {
		return nil, errNotStubbed
	}
	return f.GetMembersByClubIDFn(ctx, clubID)
}

func (f *fakeLinkRepo) GetClubIDsByMemberID(ctx context.Context, memberID int64) ([]int64, error) {
	if f.GetClubIDsByMemberIDFn == nil {
		return nil, errNotStubbed
	}
	return f.GetClubIDsByMemberIDFn(ctx, memberID)
}

func (f *fakeLinkRepo) GetClubsByMemberID(ctx context.Context, memberID int64) ([]*models.Club, error) {
	if f.GetClubsByMemberIDFn == nil {
		return nil, errNotStubbed
	}
	return f.GetClubsByMemberIDFn(ctx, memberID)
}

type fakeMembershipRepo struct {
	GetByClubIDFn func(ctx context.Context, clubID int64) (*models.MembershipPlan, error)
	UpsertFn      func(ctx context.Context, plan *models.MembershipPlan) error
}

func (f *fakeMembershipRepo) GetByClubID(ctx context.Context, clubID int64) (*models.MembershipPlan, error) {
	if f.GetByClubIDFn == nil {
		return nil, errNotStubbed
	}
	return f.GetByClubIDFn(ctx, clubID)
}

func (f *fakeMembershipRepo) Upsert(ctx context.Context, plan *models.MembershipPlan) error {
	if f.UpsertFn == nil {
		return errNotStubbed
	}
	return f.UpsertFn(ctx, plan)
}

type fakeAnnouncementRepo struct {
	ListByClubIDFn  func(ctx context.Context, clubID int64, limit uint64) ([]*models.Announcement, error)
	CreateForClubFn func(ctx context.Context, clubID int64, text string) (*models.Announcement, error)
	DeleteForClubFn func(ctx context.Context, clubID, announcementID int64) error
	ListGeneralFn   func(ctx context.Context) ([]*models.Announcement, error)
	CreateGeneralFn func(ctx context.Context, text string) (*models.Announcement, error)
	DeleteGeneralFn func(ctx context.Context, announcementID int64) error
}

func (f *fakeAnnouncementRepo) ListByClubID(ctx context.Context, clubID int64, limit uint64) ([]*models.Announcement, error) {
	if f.ListByClubIDFn == nil {
		return nil, errNotStubbed
	}
	return f.ListByClubIDFn(ctx, clubID, limit)
}

func (f *fakeAnnouncementRepo) CreateForClub(ctx context.Context, clubID int64, text string) (*models.Announcement, error) {
	if f.CreateForClubFn == nil {
		return nil, errNotStubbed
	}
	return f.CreateForClubFn(ctx, clubID, text)
}

func (f *fakeAnnouncementRepo) DeleteForClub(ctx context.Context, clubID, announcementID int64) error {
	if f.DeleteForClubFn == nil {
		return errNotStubbed
	}
	return f.DeleteForClubFn(ctx, clubID, announcementID)
}

func (f *fakeAnnouncementRepo) ListGeneral(ctx context.Context) ([]*models.Announcement, error) {
	if f.ListGeneralFn == nil {
		return nil, errNotStubbed
	}
	return f.ListGeneralFn(ctx)
}

func (f *fakeAnnouncementRepo) CreateGeneral(ctx context.Context, text string) (*models.Announcement, error) {
	if f.CreateGeneralFn == nil {
		return nil, errNotStubbed
	}
	return f.CreateGeneralFn(ctx, text)
}

func (f *fakeAnnouncementRepo) DeleteGeneral(ctx context.Context, announcementID int64) error {
	if f.DeleteGeneralFn == nil {
		return errNotStubbed
	}
	return f.DeleteGeneralFn(ctx, announcementID)
}

type fakeEventRepo struct {
	GetAllFn       func(ctx context.Context) ([]*models.Event, error)
	GetByIDFn      func(ctx context.Context, id int64) (*models.Event, error)
	ListByClubIDFn func(ctx context.Context, clubID int64) ([]*models.Event, error)
	CreateFn       func(ctx context.Context, event *models.Event) (*models.Event, error)
	UpdateFn       func(ctx context.Context, id int64, title, description, date *string, clubID *int64) error
	DeleteFn       func(ctx context.Context, id int64) error
	CountFn        func(ctx context.Context) (int64, error)
}

func (f *fakeEventRepo) GetAll(ctx context.Context) ([]*models.Event, error) {
	if f.GetAllFn == nil {
		return nil, errNotStubbed
	}
	return f.GetAllFn(ctx)
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	if f.GetByIDFn == nil {
		return nil, errNotStubbed
	}
	return f.GetByIDFn(ctx, id)
}

func (f *fakeEventRepo) ListByClubID(ctx context.Context, clubID int64) ([]*models.Event, error) {
	if f.ListByClubIDFn == nil {
		return nil, errNotStubbed
	}
	return f.ListByClubIDFn(ctx, clubID)
}

func (f *fakeEventRepo) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	if f.CreateFn == nil {
		return nil, errNotStubbed
	}
	return f.CreateFn(ctx, event)
}

func (f *fakeEventRepo) Update(ctx context.Context, id int64, title, description, date *string, clubID *int64) error {
	if f.UpdateFn == nil {
		return errNotStubbed
	}
	return f.UpdateFn(ctx, id, title, description, date, clubID)
}

func (f *fakeEventRepo) Delete(ctx context.Context, id int64) error {
	if f.DeleteFn == nil {
		return errNotStubbed
	}
	return f.DeleteFn(ctx, id)
}

func (f *fakeEventRepo) Count(ctx context.Context) (int64, error) {
	if f.CountFn == nil {
		return 0, errNotStubbed
	}
	return f.CountFn(ctx)
}

func ptrString(s string) *string { return &s }

func ptrInt64(i int64) *int64 { return &i }
