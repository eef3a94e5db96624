package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubhub-app/clubhub-api/internal/app/models"
	"github.com/clubhub-app/clubhub-api/internal/pkg/apperrors"
	"github.com/clubhub-app/clubhub-api/internal/pkg/dberrors"
)

// Unique constraint name from migrations/001_init.sql.
const constraintClubMemberLink = "club_member_links_club_id_member_id_key"

// ClubMemberLinkRepository handles database operations for the club-member
// affiliation table
type ClubMemberLinkRepository struct {
	db *pgxpool.Pool
}

// NewClubMemberLinkRepository creates a new ClubMemberLinkRepository
func NewClubMemberLinkRepository(db *pgxpool.Pool) *ClubMemberLinkRepository {
	return &ClubMemberLinkRepository{db: db}
}

// Add inserts a membership link with the current timestamp. A duplicate
// (club_id, member_id) pair is reported as apperrors.ErrAlreadyMember; the
// unique constraint makes the insert race-free with no separate existence
// check.
func (r *ClubMemberLinkRepository) Add(ctx context.Context, clubID, memberID int64) error {
	query := squirrel.Insert("club_member_links").
		Columns("club_id", "member_id", "joined_at").
		Values(clubID, memberID, squirrel.Expr("now()")).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, constraintClubMemberLink) {
			return apperrors.ErrAlreadyMember
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// Remove deletes a membership link and returns how many rows were removed.
// The delete is the existence check, so leave stays atomic.
func (r *ClubMemberLinkRepository) Remove(ctx context.Context, clubID, memberID int64) (int64, error) {
	query := squirrel.Delete("club_member_links").
		Where("club_id = ? AND member_id = ?", clubID, memberID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return result.RowsAffected(), nil
}

// GetMembersByClubID retrieves the members affiliated with a club
func (r *ClubMemberLinkRepository) GetMembersByClubID(ctx context.Context, clubID int64) ([]*models.Member, error) {
	query := squirrel.Select("cm.id", "cm.name", "cm.role").
		From("club_members cm").
		Join("club_member_links cml ON cm.id = cml.member_id").
		Where("cml.club_id = ?", clubID).
		OrderBy("cml.joined_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var members []*models.Member
	for rows.Next() {
		var member models.Member
		if err := rows.Scan(&member.ID, &member.Name, &member.Role); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		members = append(members, &member)
	}

	return members, nil
}

// GetClubIDsByMemberID retrieves the ids of all clubs a member has joined
func (r *ClubMemberLinkRepository) GetClubIDsByMemberID(ctx context.Context, memberID int64) ([]int64, error) {
	query := squirrel.Select("club_id").
		From("club_member_links").
		Where("member_id = ?", memberID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var clubIDs []int64
	for rows.Next() {
		var clubID int64
		if err := rows.Scan(&clubID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		clubIDs = append(clubIDs, clubID)
	}

	return clubIDs, nil
}

// GetClubsByMemberID retrieves the clubs a member has joined
func (r *ClubMemberLinkRepository) GetClubsByMemberID(ctx context.Context, memberID int64) ([]*models.Club, error) {
	query := squirrel.Select("c.id", "c.name", "c.description", "c.image").
		From("clubs c").
		Join("club_member_links cml ON c.id = cml.club_id").
		Where("cml.member_id = ?", memberID).
		OrderBy("cml.joined_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var clubs []*models.Club
	for rows.Next() {
		var club models.Club
		if err := rows.Scan(&club.ID, &club.Name, &club.Description, &club.Image); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		clubs = append(clubs, &club)
	}

	return clubs, nil
}
