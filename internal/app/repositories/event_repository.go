package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubhub-app/clubhub-api/internal/app/models"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// GetAll retrieves every event with its club name, oldest first by date
func (r *EventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	query := squirrel.Select(
		"e.id", "e.title", "e.description", "e.event_date", "e.club_id", "c.name",
	).
		From("events e").
		LeftJoin("clubs c ON e.club_id = c.id").
		OrderBy("e.event_date ASC").
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

	var events []*models.Event
	for rows.Next() {
		var event models.Event
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.EventDate,
			&event.ClubID,
			&event.ClubName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, &event)
	}

	return events, nil
}

// GetByID retrieves an event with its club name, or nil if none exists
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := squirrel.Select(
		"e.id", "e.title", "e.description", "e.event_date", "e.club_id", "c.name",
	).
		From("events e").
		LeftJoin("clubs c ON e.club_id = c.id").
		Where("e.id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var event models.Event
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.EventDate,
		&event.ClubID,
		&event.ClubName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &event, nil
}

// ListByClubID retrieves a club's events, oldest first by date
func (r *EventRepository) ListByClubID(ctx context.Context, clubID int64) ([]*models.Event, error) {
	query := squirrel.Select("id", "title", "description", "event_date").
		From("events").
		Where("club_id = ?", clubID).
		OrderBy("event_date ASC").
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

	var events []*models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(&event.ID, &event.Title, &event.Description, &event.EventDate); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, &event)
	}

	return events, nil
}

// Create inserts a new event and returns the stored row
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	query := squirrel.Insert("events").
		Columns("title", "description", "event_date", "club_id").
		Values(event.Title, event.Description, event.EventDate, event.ClubID).
		Suffix("RETURNING id, title, description, event_date, club_id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var created models.Event
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&created.ID,
		&created.Title,
		&created.Description,
		&created.EventDate,
		&created.ClubID,
	)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &created, nil
}

// Update applies a coalesce-on-null partial update to an event
func (r *EventRepository) Update(ctx context.Context, id int64, title, description, date *string, clubID *int64) error {
	query := squirrel.Update("events").
		Set("title", squirrel.Expr("COALESCE(?, title)", title)).
		Set("description", squirrel.Expr("COALESCE(?, description)", description)).
		Set("event_date", squirrel.Expr("COALESCE(?, event_date)", date)).
		Set("club_id", squirrel.Expr("COALESCE(?, club_id)", clubID)).
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

// Delete removes an event
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("events").
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

// Count returns the number of events
func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("events").
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
