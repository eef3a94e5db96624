package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubhub-app/clubhub-api/internal/app/models"
)

// AdminUserRepository handles database operations for administrative accounts
type AdminUserRepository struct {
	db *pgxpool.Pool
}

// NewAdminUserRepository creates a new AdminUserRepository
func NewAdminUserRepository(db *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

// FindByEmail retrieves an admin account by email, or nil if none exists
func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	query := squirrel.Select("id", "email", "password", "role", "created_at").
		From("users").
		Where("email = ?", email).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var user models.AdminUser
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &user, nil
}

// GetByID retrieves an admin account by id, or nil if none exists
func (r *AdminUserRepository) GetByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	query := squirrel.Select("id", "email", "password", "role", "created_at").
		From("users").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var user models.AdminUser
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &user, nil
}

// GetAll retrieves every admin account
func (r *AdminUserRepository) GetAll(ctx context.Context) ([]*models.AdminUser, error) {
	query := squirrel.Select("id", "email", "password", "role", "created_at").
		From("users").
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

	var users []*models.AdminUser
	for rows.Next() {
		var user models.AdminUser
		err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Password,
			&user.Role,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		users = append(users, &user)
	}

	return users, nil
}

// Create inserts a new admin account and returns its id
func (r *AdminUserRepository) Create(ctx context.Context, user *models.AdminUser) (int64, error) {
	query := squirrel.Insert("users").
		Columns("email", "password", "role").
		Values(user.Email, user.Password, user.Role).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// Update applies a coalesce-on-null partial update to an admin account
func (r *AdminUserRepository) Update(ctx context.Context, id int64, email, password, role *string) error {
	query := squirrel.Update("users").
		Set("email", squirrel.Expr("COALESCE(?, email)", email)).
		Set("password", squirrel.Expr("COALESCE(?, password)", password)).
		Set("role", squirrel.Expr("COALESCE(?, role)", role)).
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

// Delete removes an admin account
func (r *AdminUserRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("users").
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

// Count returns the number of admin accounts
func (r *AdminUserRepository) Count(ctx context.Context) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("users").
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
