package dto

// CreateAnnouncementRequest carries a new announcement, club-scoped or
// platform-wide.
type CreateAnnouncementRequest struct {
	Text string `json:"text"`
}

// AnnouncementListResponse wraps a newest-first announcement listing.
type AnnouncementListResponse struct {
	Announcements []AnnouncementEntry `json:"announcements"`
}

// AnnouncementCreatedResponse wraps a freshly inserted announcement.
type AnnouncementCreatedResponse struct {
	Announcement AnnouncementEntry `json:"announcement"`
}
