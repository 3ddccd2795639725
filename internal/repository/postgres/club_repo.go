package postgres

import (
	"context"
	"database/sql"
	"errors"

	"algosphere/internal/domain"
)

type clubRepository struct {
	DB *sql.DB
}

// NewClubRepository returns a domain.ClubRepository implemented with Postgres.
func NewClubRepository(db *sql.DB) domain.ClubRepository {
	return &clubRepository{
		DB: db,
	}
}

func (r *clubRepository) Create(ctx context.Context, c *domain.Club) error {
	query := `
		INSERT INTO clubs (address, name, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.DB.ExecContext(ctx, query, c.Address, c.Name, c.CreatedAt)
	if err != nil {
		// address is the primary key; a concurrent duplicate registration
		// resolves here rather than in the read-then-write gap.
		if isUniqueViolation(err) {
			return domain.ErrClubAlreadyRegistered
		}
		return err
	}
	return nil
}

func (r *clubRepository) GetByAddress(ctx context.Context, address string) (*domain.Club, error) {
	query := `
		SELECT address, name, created_at
		FROM clubs
		WHERE address = $1
	`
	c := &domain.Club{}
	err := r.DB.QueryRowContext(ctx, query, address).Scan(&c.Address, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClubNotFound
		}
		return nil, err
	}
	return c, nil
}
