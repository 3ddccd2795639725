package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"algosphere/internal/domain"
)

type challengeRepository struct {
	DB *sql.DB
}

// NewChallengeRepository returns a domain.ChallengeRepository implemented with Postgres.
func NewChallengeRepository(db *sql.DB) domain.ChallengeRepository {
	return &challengeRepository{DB: db}
}

func (r *challengeRepository) Create(ctx context.Context, address, nonceHash string, expiresAt time.Time) error {
	query := `
		INSERT INTO auth_challenges (address, nonce_hash, expires_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.DB.ExecContext(ctx, query, address, nonceHash, expiresAt)
	return err
}

func (r *challengeRepository) GetLatest(ctx context.Context, address string) (*domain.Challenge, error) {
	query := `
		SELECT id, address, nonce_hash, expires_at
		FROM auth_challenges
		WHERE address = $1 AND expires_at > NOW()
		ORDER BY expires_at DESC
		LIMIT 1
	`
	c := &domain.Challenge{}
	err := r.DB.QueryRowContext(ctx, query, address).Scan(&c.ID, &c.Address, &c.NonceHash, &c.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvalidChallenge
		}
		return nil, err
	}
	return c, nil
}

func (r *challengeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM auth_challenges WHERE id = $1`, id)
	return err
}
