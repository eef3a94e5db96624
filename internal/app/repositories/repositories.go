package repositories

import (
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository for dependency wiring
type Repositories struct {
	AdminUserRepository      *AdminUserRepository
	MemberRepository         *MemberRepository
	ClubRepository           *ClubRepository
	ClubMemberLinkRepository *ClubMemberLinkRepository
	MembershipRepository     *MembershipRepository
	AnnouncementRepository   *AnnouncementRepository
	EventRepository          *EventRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminUserRepository:      NewAdminUserRepository(db),
		MemberRepository:         NewMemberRepository(db),
		ClubRepository:           NewClubRepository(db),
		ClubMemberLinkRepository: NewClubMemberLinkRepository(db),
		MembershipRepository:     NewMembershipRepository(db),
		AnnouncementRepository:   NewAnnouncementRepository(db),
		EventRepository:          NewEventRepository(db),
	}
}

// joinColumns renders a column list for RETURNING suffixes
func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
