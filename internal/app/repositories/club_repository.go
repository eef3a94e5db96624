package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubhub-app/clubhub-api/internal/app/models"
)

var clubColumns = []string{"id", "name", "description", "image", "admin_id", "leader_id"}

// ClubRepository handles database operations for clubs
type ClubRepository struct {
	db *pgxpool.Pool
}

// NewClubRepository creates a new ClubRepository
func NewClubRepository(db *pgxpool.Pool) *ClubRepository {
	return &ClubRepository{db: db}
}

func scanClub(row pgx.Row) (*models.Club, error) {
	var club models.Club
	err := row.Scan(
		&club.ID,
		&club.Name,
		&club.Description,
		&club.Image,
		&club.AdminID,
		&club.LeaderID,
	)
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// GetAll retrieves every club
func (r *ClubRepository) GetAll(ctx context.Context) ([]*models.Club, error) {
	query := squirrel.Select(clubColumns...).
		From("clubs").
		OrderBy("id ASC").
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
		club, err := scanClub(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		clubs = append(clubs, club)
	}

	return clubs, nil
}

// GetByID retrieves a club by id, or nil if none exists
func (r *ClubRepository) GetByID(ctx context.Context, id int64) (*models.Club, error) {
	query := squirrel.Select(clubColumns...).
		From("clubs").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	club, err := scanClub(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return club, nil
}

// FindByLeaderID retrieves the club a member leads, or nil if none
func (r *ClubRepository) FindByLeaderID(ctx context.Context, memberID int64) (*models.Club, error) {
	query := squirrel.Select(clubColumns...).
		From("clubs").
		Where("leader_id = ?", memberID).
		OrderBy("id ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	club, err := scanClub(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return club, nil
}

// Create inserts a new club and returns the stored row
func (r *ClubRepository) Create(ctx context.Context, club *models.Club) (*models.Club, error) {
	query := squirrel.Insert("clubs").
		Columns("name", "description", "image", "admin_id", "leader_id").
		Values(club.Name, club.Description, club.Image, club.AdminID, club.LeaderID).
		Suffix("RETURNING " + joinColumns(clubColumns)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	created, err := scanClub(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return created, nil
}

// Update applies a coalesce-on-null partial update to a club
func (r *ClubRepository) Update(ctx context.Context, id int64, name, description, image *string, leaderID *int64) error {
	query := squirrel.Update("clubs").
		Set("name", squirrel.Expr("COALESCE(?, name)", name)).
		Set("description", squirrel.Expr("COALESCE(?, description)", description)).
		Set("image", squirrel.Expr("COALESCE(?, image)", image)).
		Set("leader_id", squirrel.Expr("COALESCE(?, leader_id)", leaderID)).
		Where("id = ?", id).
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

// Delete removes a club. Membership links, announcements, membership plan
// and events cascade via the schema.
func (r *ClubRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("clubs").
		Where("id = ?", id).
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

// Count returns the number of clubs
func (r *ClubRepository) Count(ctx context.Context) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("clubs").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return count, nil
}
