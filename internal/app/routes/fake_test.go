package routes

import (
	"context"
	"errors"

	"github.com/clubhub-app/clubhub-api/internal/app/models/dto"
)

// errNotStubbed flags a fake method the test forgot to set up.
var errNotStubbed = errors.New("fake: method not stubbed")

type fakeAuthService struct {
	LoginFn    func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RegisterFn func(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if f.LoginFn == nil {
		return nil, errNotStubbed
	}
	return f.LoginFn(ctx, req)
}

func (f *fakeAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if f.RegisterFn == nil {
		return nil, errNotStubbed
	}
	return f.RegisterFn(ctx, req)
}

type fakeClubService struct {
	GetAllClubsFn  func(ctx context.Context) (*dto.ClubListResponse, error)
	GetClubByIDFn  func(ctx context.Context, id int64) (*dto.ClubDetailResponse, error)
	CreateClubFn   func(ctx context.Context, req *dto.CreateClubRequest) (*dto.ClubDetailResponse, error)
	UpdateClubFn   func(ctx context.Context, id int64, req *dto.UpdateClubRequest) error
	DeleteClubFn   func(ctx context.Context, id int64) error
	JoinClubFn     func(ctx context.Context, clubID, memberID int64) error
	LeaveClubFn    func(ctx context.Context, clubID, memberID int64) error
	RemoveMemberFn func(ctx context.Context, clubID, memberID int64) error
}

func (f *fakeClubService) GetAllClubs(ctx context.Context) (*dto.ClubListResponse, error) {
	if f.GetAllClubsFn == nil {
		return nil, errNotStubbed
	}
	return f.GetAllClubsFn(ctx)
}

func (f *fakeClubService) GetClubByID(ctx context.Context, id int64) (*dto.ClubDetailResponse, error) {
	if f.GetClubByIDFn == nil {
		return nil, errNotStubbed
	}
	return f.GetClubByIDFn(ctx, id)
}

func (f *fakeClubService) CreateClub(ctx context.Context, req *dto.CreateClubRequest) (*dto.ClubDetailResponse, error) {
	if f.CreateClubFn == nil {
		return nil, errNotStubbed
	}
	return f.CreateClubFn(ctx, req)
}

func (f *fakeClubService) UpdateClub(ctx context.Context, id int64, req *dto.UpdateClubRequest) error {
	if f.UpdateClubFn == nil {
		return errNotStubbed
	}
	return f.UpdateClubFn(ctx, id, req)
}

func (f *fakeClubService) DeleteClub(ctx context.Context, id int64) error {
	if f.DeleteClubFn == nil {
		return errNotStubbed
	}
	return f.DeleteClubFn(ctx, id)
}

func (f *fakeClubService) JoinClub(ctx context.Context, clubID, memberID int64) error {
	if f.JoinClubFn == nil {
		return errNotStubbed
	}
	return f.JoinClubFn(ctx, clubID, memberID)
}

func (f *fakeClubService) LeaveClub(ctx context.Context, clubID, memberID int64) error {
	if f.LeaveClubFn == nil {
		return errNotStubbed
	}
	return f.LeaveClubFn(ctx, clubID, memberID)
}

func (f *fakeClubService) RemoveMember(ctx context.Context, clubID, memberID int64) error {
	if f.RemoveMemberFn == nil {
		return errNotStubbed
	}
	return f.RemoveMemberFn(ctx, clubID, memberID)
}

type fakeMembershipService struct {
	GetPlanFn  func(ctx context.Context, clubID int64) (*dto.MembershipPlanResponse, error)
	SavePlanFn func(ctx context.Context, clubID int64, req *dto.MembershipPlanRequest) error
}

func (f *fakeMembershipService) GetPlan(ctx context.Context, clubID int64) (*dto.MembershipPlanResponse, error) {
	if f.GetPlanFn == nil {
		return nil, errNotStubbed
	}
	return f.GetPlanFn(ctx, clubID)
}

func (f *fakeMembershipService) SavePlan(ctx context.Context, clubID int64, req *dto.MembershipPlanRequest) error {
	if f.SavePlanFn == nil {
		return errNotStubbed
	}
	return f.SavePlanFn(ctx, clubID, req)
}

type fakeAnnouncementService struct {
	ListClubAnnouncementsFn     func(ctx context.Context, clubID int64) (*dto.AnnouncementListResponse, error)
	CreateClubAnnouncementFn    func(ctx context.Context, clubID int64, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementCreatedResponse, error)
	DeleteClubAnnouncementFn    func(ctx context.Context, clubID, announcementID int64) error
	ListGeneralAnnouncementsFn  func(ctx context.Context) (*dto.AnnouncementListResponse, error)
	CreateGeneralAnnouncementFn func(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementCreatedResponse, error)
	DeleteGeneralAnnouncementFn func(ctx context.Context, announcementID int64) error
}

func (f *fakeAnnouncementService) ListClubAnnouncements(ctx context.Context, clubID int64) (*dto.AnnouncementListResponse, error) {
	if f.ListClubAnnouncementsFn == nil {
		return nil, errNotStubbed
	}
	return f.ListClubAnnouncementsFn(ctx, clubID)
}

func (f *fakeAnnouncementService) CreateClubAnnouncement(ctx context.Context, clubID int64, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementCreatedResponse, error) {
	if f.CreateClubAnnouncementFn == nil {
		return nil, errNotStubbed
	}
	return f.CreateClubAnnouncementFn(ctx, clubID, req)
}

func (f *fakeAnnouncementService) DeleteClubAnnouncement(ctx context.Context, clubID, announcementID int64) error {
	if f.DeleteClubAnnouncementFn == nil {
		return errNotStubbed
	}
	return f.DeleteClubAnnouncementFn(ctx, clubID, announcementID)
}

func (f *fakeAnnouncementService) ListGeneralAnnouncements(ctx context.Context) (*dto.AnnouncementListResponse, error) {
	if f.ListGeneralAnnouncementsFn == nil {
		return nil, errNotStubbed
	}
	return f.ListGeneralAnnouncementsFn(ctx)
}

func (f *fakeAnnouncementService) CreateGeneralAnnouncement(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementCreatedResponse, error) {
	if f.CreateGeneralAnnouncementFn == nil {
		return nil, errNotStubbed
	}
	return f.CreateGeneralAnnouncementFn(ctx, req)
}

func (f *fakeAnnouncementService) DeleteGeneralAnnouncement(ctx context.Context, announcementID int64) error {
	if f.DeleteGeneralAnnouncementFn == nil {
		return errNotStubbed
	}
	return f.DeleteGeneralAnnouncementFn(ctx, announcementID)
}

type fakeEventService struct {
	GetAllEventsFn func(ctx context.Context) (*dto.EventListResponse, error)
	GetEventByIDFn func(ctx context.Context, id int64) (*dto.EventDetailResponse, error)
	CreateEventFn  func(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventCreatedResponse, error)
	UpdateEventFn  func(ctx context.Context, id int64, req *dto.UpdateEventRequest) error
	DeleteEventFn  func(ctx context.Context, id int64) error
}

func (f *fakeEventService) GetAllEvents(ctx context.Context) (*dto.EventListResponse, error) {
	if f.GetAllEventsFn == nil {
		return nil, errNotStubbed
	}
	return f.GetAllEventsFn(ctx)
}

func (f *fakeEventService) GetEventByID(ctx context.Context, id int64) (*dto.EventDetailResponse, error) {
	if f.GetEventByIDFn == nil {
		return nil, errNotStubbed
	}
	return f.GetEventByIDFn(ctx, id)
}

func (f *fakeEventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventCreatedResponse, error) {
	if f.CreateEventFn == nil {
		return nil, errNotStubbed
	}
	return f.CreateEventFn(ctx, req)
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) error {
	if f.UpdateEventFn == nil {
		return errNotStubbed
	}
	return f.UpdateEventFn(ctx, id, req)
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id int64) error {
	if f.DeleteEventFn == nil {
		return errNotStubbed
	}
	return f.DeleteEventFn(ctx, id)
}

type fakeUserService struct {
	GetAllUsersFn func(ctx context.Context) (*dto.UserListResponse, error)
	GetUserByIDFn func(ctx context.Context, id int64) (*dto.UserDetailResponse, error)
	UpdateUserFn  func(ctx context.Context, id int64, req *dto.UpdateUserRequest) error
	DeleteUserFn  func(ctx context.Context, id int64) error
}

func (f *fakeUserService) GetAllUsers(ctx context.Context) (*dto.UserListResponse, error) {
	if f.GetAllUsersFn == nil {
		return nil, errNotStubbed
	}
	return f.GetAllUsersFn(ctx)
}

func (f *fakeUserService) GetUserByID(ctx context.Context, id int64) (*dto.UserDetailResponse, error) {
	if f.GetUserByIDFn == nil {
		return nil, errNotStubbed
	}
	return f.GetUserByIDFn(ctx, id)
}

func (f *fakeUserService) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) error {
	if f.UpdateUserFn == nil {
		return errNotStubbed
	}
	return f.UpdateUserFn(ctx, id, req)
}

func (f *fakeUserService) DeleteUser(ctx context.Context, id int64) error {
	if f.DeleteUserFn == nil {
		return errNotStubbed
	}
	return f.DeleteUserFn(ctx, id)
}

type fakeMemberService struct {
	GetAllMembersFn       func(ctx context.Context) (*dto.MemberListResponse, error)
	GetMemberProfileFn    func(ctx context.Context, id int64) (*dto.MemberProfileResponse, error)
	UpdateMemberProfileFn func(ctx context.Context, id int64, req *dto.UpdateMemberProfileRequest) (*dto.MemberProfileUpdatedResponse, error)
}

func (f *fakeMemberService) GetAllMembers(ctx context.Context) (*dto.MemberListResponse, error) {
	if f.GetAllMembersFn == nil {
		return nil, errNotStubbed
	}
	return f.GetAllMembersFn(ctx)
}

func (f *fakeMemberService) GetMemberProfile(ctx context.Context, id int64) (*dto.MemberProfileResponse, error) {
	if f.GetMemberProfileFn == nil {
		return nil, errNotStubbed
	}
	return f.GetMemberProfileFn(ctx, id)
}

func (f *fakeMemberService) UpdateMemberProfile(ctx context.Context, id int64, req *dto.UpdateMemberProfileRequest) (*dto.MemberProfileUpdatedResponse, error) {
	if f.UpdateMemberProfileFn == nil {
		return nil, errNotStubbed
	}
	return f.UpdateMemberProfileFn(ctx, id, req)
}

type fakeStatsService struct {
	GetStatsFn func(ctx context.Context) (*dto.StatsResponse, error)
}

func (f *fakeStatsService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	if f.GetStatsFn == nil {
		return nil, errNotStubbed
	}
	return f.GetStatsFn(ctx)
}

type fakePinger struct {
	PingFn func(ctx context.Context) error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	if f.PingFn == nil {
		return nil
	}
	return f.PingFn(ctx)
}
