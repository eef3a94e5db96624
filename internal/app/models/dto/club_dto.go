package dto

// CreateClubRequest carries a new club. Only Name is required; Description
// and Image default to empty strings.
type CreateClubRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	AdminID     *int64 `json:"adminId"`
	LeaderID    *int64 `json:"leaderId"`
}

// UpdateClubRequest is a partial update; omitted fields keep their stored
// values. At least one field must be present.
type UpdateClubRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	LeaderID    *int64  `json:"leaderId"`
}

// HasChanges reports whether any field was supplied.
func (r *UpdateClubRequest) HasChanges() bool {
	return r.Name != nil || r.Description != nil || r.Image != nil || r.LeaderID != nil
}

// ClubMemberEntry is the member summary embedded in club detail responses.
type ClubMemberEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// AnnouncementEntry is the announcement shape embedded in club detail and
// announcement list responses.
type AnnouncementEntry struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"`
}

// ClubEventEntry is the event shape embedded in club detail responses.
type ClubEventEntry struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// ClubResponse is a club with its gathered sub-resources.
type ClubResponse struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Image         string              `json:"image"`
	AdminID       *int64              `json:"adminId"`
	LeaderID      *int64              `json:"leaderId"`
	Members       []ClubMemberEntry   `json:"members"`
	Announcements []AnnouncementEntry `json:"announcements"`
	Events        []ClubEventEntry    `json:"events"`
}

// ClubListResponse wraps the full club listing.
type ClubListResponse struct {
	Clubs []ClubResponse `json:"clubs"`
}

// ClubDetailResponse wraps a single club.
type ClubDetailResponse struct {
	Club ClubResponse `json:"club"`
}

// JoinLeaveRequest carries the member acting on a membership link.
type JoinLeaveRequest struct {
	MemberID *int64 `json:"memberId"`
}
