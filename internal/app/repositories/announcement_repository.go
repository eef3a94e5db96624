package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubhub-app/clubhub-api/internal/app/models"
)

// AnnouncementRepository handles database operations for club-scoped and
// platform-wide announcements
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// ListByClubID retrieves a club's announcements, newest first. A limit of 0
// means no limit.
func (r *AnnouncementRepository) ListByClubID(ctx context.Context, clubID int64, limit uint64) ([]*models.Announcement, error) {
	query := squirrel.Select("id", "club_id", "text", "created_at").
		From("club_announcements").
		Where("club_id = ?", clubID).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
	if limit > 0 {
		query = query.Limit(limit)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.ClubID, &a.Text, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		announcements = append(announcements, &a)
	}

	return announcements, nil
}

// CreateForClub inserts a club announcement and returns the stored row
func (r *AnnouncementRepository) CreateForClub(ctx context.Context, clubID int64, text string) (*models.Announcement, error) {
	query := squirrel.Insert("club_announcements").
		Columns("club_id", "text").
		Values(clubID, text).
		Suffix("RETURNING id, club_id, text, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var a models.Announcement
	err = r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.ClubID, &a.Text, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &a, nil
}

// DeleteForClub removes a club announcement. Deleting an absent row is not
// an error (idempotent delete).
func (r *AnnouncementRepository) DeleteForClub(ctx context.Context, clubID, announcementID int64) error {
	query := squirrel.Delete("club_announcements").
		Where("id = ? AND club_id = ?", announcementID, clubID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// ListGeneral retrieves platform-wide announcements, newest first
func (r *AnnouncementRepository) ListGeneral(ctx context.Context) ([]*models.Announcement, error) {
	query := squirrel.Select("id", "text", "created_at").
		From("general_announcements").
		OrderBy("created_at DESC").
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

	var announcements []*models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Text, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		announcements = append(announcements, &a)
	}

	return announcements, nil
}

// CreateGeneral inserts a platform-wide announcement and returns the stored row
func (r *AnnouncementRepository) CreateGeneral(ctx context.Context, text string) (*models.Announcement, error) {
	query := squirrel.Insert("general_announcements").
		Columns("text").
		Values(text).
		Suffix("RETURNING id, text, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var a models.Announcement
	err = r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.Text, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &a, nil
}

// DeleteGeneral removes a platform-wide announcement (idempotent delete)
func (r *AnnouncementRepository) DeleteGeneral(ctx context.Context, announcementID int64) error {
	query := squirrel.Delete("general_announcements").
		Where("id = ?", announcementID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}
