package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubhub-app/clubhub-api/internal/app/models"
)

// MembershipRepository handles database operations for per-club membership
// plans
type MembershipRepository struct {
	db *pgxpool.Pool
}

// NewMembershipRepository creates a new MembershipRepository
func NewMembershipRepository(db *pgxpool.Pool) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// GetByClubID retrieves a club's membership plan, or nil if the club has not
// configured one. Absence is a valid state, not an error.
func (r *MembershipRepository) GetByClubID(ctx context.Context, clubID int64) (*models.MembershipPlan, error) {
	query := squirrel.Select(
		"id", "club_id", "membership_name", "membership_number",
		"membership_description", "membership_image",
	).
		From("membership").
		Where("club_id = ?", clubID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var plan models.MembershipPlan
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&plan.ID,
		&plan.ClubID,
		&plan.Name,
		&plan.Number,
		&plan.Description,
		&plan.Image,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &plan, nil
}

// Upsert creates or replaces a club's membership plan in one statement. The
// unique constraint on club_id keeps concurrent first writes from producing
// two rows.
func (r *MembershipRepository) Upsert(ctx context.Context, plan *models.MembershipPlan) error {
	query := squirrel.Insert("membership").
		Columns("club_id", "membership_name", "membership_number", "membership_description", "membership_image").
		Values(plan.ClubID, plan.Name, plan.Number, plan.Description, plan.Image).
		Suffix(`ON CONFLICT (club_id) DO UPDATE SET
			membership_name = EXCLUDED.membership_name,
			membership_number = EXCLUDED.membership_number,
			membership_description = EXCLUDED.membership_description,
			membership_image = EXCLUDED.membership_image`).
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
