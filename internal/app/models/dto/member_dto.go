package dto

// MemberListResponse wraps the member directory (used for leader assignment).
type MemberListResponse struct {
	Members []MemberSummary `json:"members"`
}

// MemberProfile is the full profile shape. Role is the effective role,
// recomputed from club leadership on every fetch.
type MemberProfile struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Username  *string `json:"username"`
	Email     string  `json:"email"`
	AboutMe   *string `json:"about_me"`
	YearSec   *string `json:"year_section"`
	Course    *string `json:"course"`
	Birthday  *string `json:"birthday"`
	StudentID string  `json:"student_id"`
	JoinedAt  string  `json:"joined_at"`
	Role      string  `json:"role"`
	LeaderOf  *int64  `json:"leaderOf"`
}

// MemberClubEntry is a club a member belongs to, as shown on the profile.
type MemberClubEntry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// MemberProfileResponse is the profile fetch envelope.
type MemberProfileResponse struct {
	Member MemberProfile     `json:"member"`
	Clubs  []MemberClubEntry `json:"clubs"`
}

// UpdateMemberProfileRequest is a coalesce-on-null profile update.
type UpdateMemberProfileRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	AboutMe  *string `json:"about_me"`
	YearSec  *string `json:"year_section"`
	Course   *string `json:"course"`
	Birthday *string `json:"birthday"`
}

// MemberProfileUpdatedResponse returns the row as stored after the update.
type MemberProfileUpdatedResponse struct {
	Message string        `json:"message"`
	Member  MemberProfile `json:"member"`
}
