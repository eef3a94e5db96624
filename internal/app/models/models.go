package models

import "time"

// AdminUser defines the administrative account model based on the 'users' table.
// Admin accounts are created out-of-band (seeding); no route registers them.
type AdminUser struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // Stored credential (excluded from JSON)
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Member defines the club member model based on the 'club_members' table.
type Member struct {
	ID        int64   `json:"id" db:"id"`
	StudentID string  `json:"student_id" db:"student_id"`
	Email     string  `json:"email" db:"email"`
	Password  string  `json:"-" db:"password"` // Stored credential (excluded from JSON)
	Name      string  `json:"name" db:"name"`
	Role      string  `json:"role" db:"role"`
	Username  *string `json:"username" db:"username"`
	AboutMe   *string `json:"about_me" db:"about_me"`
	YearSec   *string `json:"year_section" db:"year_section"`
	Course    *string `json:"course" db:"course"`
	Birthday  *string `json:"birthday" db:"birthday"`
	// ClubID is a legacy single-club column. Registration writes NULL; real
	// affiliation lives in club_member_links.
	ClubID   *int64    `json:"club_id" db:"club_id"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}

// Club defines the club model based on the 'clubs' table.
type Club struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Image       string `json:"image" db:"image"`
	AdminID     *int64 `json:"adminId" db:"admin_id"`
	LeaderID    *int64 `json:"leaderId" db:"leader_id"`
}

// ClubMemberLink records a member's affiliation with a club, based on the
// 'club_member_links' table. Unique on (club_id, member_id).
type ClubMemberLink struct {
	ID       int64     `json:"id" db:"id"`
	ClubID   int64     `json:"clubId" db:"club_id"`
	MemberID int64     `json:"memberId" db:"member_id"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`
}

// MembershipPlan describes a club's own membership program, based on the
// 'membership' table. At most one row per club.
type MembershipPlan struct {
	ID          int64  `json:"id" db:"id"`
	ClubID      int64  `json:"club_id" db:"club_id"`
	Name        string `json:"membership_name" db:"membership_name"`
	Number      string `json:"membership_number" db:"membership_number"`
	Description string `json:"membership_description" db:"membership_description"`
	Image       string `json:"membership_image" db:"membership_image"`
}

// Announcement is either club-scoped ('club_announcements') or platform-wide
// ('general_announcements', ClubID nil).
type Announcement struct {
	ID        int64     `json:"id" db:"id"`
	ClubID    *int64    `json:"clubId,omitempty" db:"club_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"date" db:"created_at"`
}

// Event defines the event model based on the 'events' table. Platform-wide
// events have no club.
type Event struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	EventDate   string `json:"date" db:"event_date"`
	ClubID      *int64 `json:"club_id" db:"club_id"`
	ClubName    *string `json:"club_name,omitempty"` // Relation, no db column
}
