package domain

import (
	"context"
	"time"
)

// Challenge is a one-time login nonce issued for a wallet address. The nonce
// itself is never stored; only its hash is, alongside an expiry.
type Challenge struct {
	ID        string
	Address   string
	NonceHash string
	ExpiresAt time.Time
}

// ChallengeRepository defines the interface for one-time login challenge storage.
type ChallengeRepository interface {
	Create(ctx context.Context, address, nonceHash string, expiresAt time.Time) error
	// GetLatest returns the most recent unexpired challenge for the address.
	GetLatest(ctx context.Context, address string) (*Challenge, error)
	Delete(ctx context.Context, id string) error
}

// TokenIssuer issues session tokens (e.g. JWT) for an authenticated wallet address.
type TokenIssuer interface {
	Issue(address string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a session token and returns the wallet address it was
// issued for.
type TokenVerifier interface {
	Verify(token string) (address string, err error)
}

// AuthService implements wallet-signature login: the caller requests a
// challenge, signs it with the wallet's key, and exchanges the signature for a
// session token whose subject is the wallet address.
type AuthService interface {
	RequestChallenge(ctx context.Context, address string) (nonce string, err error)
	Login(ctx context.Context, address, nonce string, signature []byte) (token string, err error)
}
