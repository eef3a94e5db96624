package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubhub-app/clubhub-api/internal/app/models"
	"github.com/clubhub-app/clubhub-api/internal/pkg/apperrors"
	"github.com/clubhub-app/clubhub-api/internal/pkg/dberrors"
)

// Unique constraint names from migrations/001_init.sql.
const (
	constraintMemberEmail     = "club_members_email_key"
	constraintMemberStudentID = "club_members_student_id_key"
)

var memberColumns = []string{
	"id", "student_id", "email", "password", "name", "role",
	"username", "about_me", "year_section", "course", "birthday",
	"club_id", "joined_at",
}

// MemberRepository handles database operations for club members
type MemberRepository struct {
	db *pgxpool.Pool
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{db: db}
}

func scanMember(row pgx.Row) (*models.Member, error) {
	var member models.Member
	err := row.Scan(
		&member.ID,
		&member.StudentID,
		&member.Email,
		&member.Password,
		&member.Name,
		&member.Role,
		&member.Username,
		&member.AboutMe,
		&member.YearSec,
		&member.Course,
		&member.Birthday,
		&member.ClubID,
		&member.JoinedAt,
	)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByEmail retrieves a member by email, or nil if none exists
func (r *MemberRepository) FindByEmail(ctx context.Context, email string) (*models.Member, error) {
	query := squirrel.Select(memberColumns...).
		From("club_members").
		Where("email = ?", email).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	member, err := scanMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return member, nil
}

// GetByID retrieves a member by id, or nil if none exists
func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	query := squirrel.Select(memberColumns...).
		From("club_members").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	member, err := scanMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return member, nil
}

// GetAll retrieves every member, ordered by name
func (r *MemberRepository) GetAll(ctx context.Context) ([]*models.Member, error) {
	query := squirrel.Select(memberColumns...).
		From("club_members").
		OrderBy("name ASC").
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
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		members = append(members, member)
	}

	return members, nil
}

// Create inserts a new member with no club affiliation. Duplicate email or
// student id is reported as apperrors.ErrDuplicateAccount; the uniqueness
// check is the database constraint itself, so concurrent registrations
// cannot both succeed.
func (r *MemberRepository) Create(ctx context.Context, member *models.Member) (int64, error) {
	query := squirrel.Insert("club_members").
		Columns("club_id", "student_id", "email", "password", "name", "role").
		Values(nil, member.StudentID, member.Email, member.Password, member.Name, member.Role).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, constraintMemberEmail) ||
			dberrors.IsDuplicateConstraintError(err, constraintMemberStudentID) {
			return 0, apperrors.ErrDuplicateAccount
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// UpdateProfile applies a coalesce-on-null partial update to a member's
// profile fields and returns the row as stored afterwards.
func (r *MemberRepository) UpdateProfile(ctx context.Context, id int64, name, username, email, aboutMe, yearSection, course, birthday *string) (*models.Member, error) {
	query := squirrel.Update("club_members").
		Set("name", squirrel.Expr("COALESCE(?, name)", name)).
		Set("username", squirrel.Expr("COALESCE(?, username)", username)).
		Set("email", squirrel.Expr("COALESCE(?, email)", email)).
		Set("about_me", squirrel.Expr("COALESCE(?, about_me)", aboutMe)).
		Set("year_section", squirrel.Expr("COALESCE(?, year_section)", yearSection)).
		Set("course", squirrel.Expr("COALESCE(?, course)", course)).
		Set("birthday", squirrel.Expr("COALESCE(?, birthday)", birthday)).
		Where("id = ?", id).
		Suffix("RETURNING " + joinColumns(memberColumns)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	member, err := scanMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return member, nil
}

// Count returns the number of members
func (r *MemberRepository) Count(ctx context.Context) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("club_members").
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
