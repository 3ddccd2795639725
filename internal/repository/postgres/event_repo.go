package postgres

import (
	"context"
	"database/sql"
	"errors"

	"algosphere/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns a domain.EventRepository implemented with
// Postgres. Event ids come from the events table's own sequence, so
// identifiers are monotonic and never reused.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `id, club_address, name, venue, event_date, price, total, sold, asset_id, created_at`

func scanEvent(row *sql.Row) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID, &e.ClubAddress, &e.Name, &e.Venue, &e.Date,
		&e.Price, &e.Total, &e.Sold, &e.AssetID, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (club_address, name, venue, event_date, price, total, sold, asset_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return q(ctx, r.DB).QueryRowContext(ctx, query,
		e.ClubAddress, e.Name, e.Venue, e.Date, e.Price, e.Total, e.Sold, e.AssetID, e.CreatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	return scanEvent(q(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *eventRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := q(ctx, r.DB).QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n)
	return n, err
}

func (r *eventRepository) List(ctx context.Context, limit, offset int) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := q(ctx, r.DB).QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(
			&e.ID, &e.ClubAddress, &e.Name, &e.Venue, &e.Date,
			&e.Price, &e.Total, &e.Sold, &e.AssetID, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.DB, fn)
}

func (r *eventRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
		FOR UPDATE
	`
	return scanEvent(q(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *eventRepository) IncrementSold(ctx context.Context, id int64) error {
	// The sold <= total invariant is enforced both here and by a table CHECK.
	query := `
		UPDATE events SET sold = sold + 1
		WHERE id = $1 AND sold < total
	`
	result, err := q(ctx, r.DB).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSoldOut
	}
	return nil
}

func (r *eventRepository) ConsumePayment(ctx context.Context, txID string, eventID int64, buyer string) error {
	query := `
		INSERT INTO ticket_payments (tx_id, event_id, buyer, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	_, err := q(ctx, r.DB).ExecContext(ctx, query, txID, eventID, buyer)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPaymentAlreadyUsed
		}
		return err
	}
	return nil
}
