package services

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/types"
	"golang.org/x/crypto/bcrypt"

	"algosphere/internal/domain"
)

const (
	bcryptCost      = 10
	challengeExpiry = 5 * time.Minute
)

type authService struct {
	challengeRepo domain.ChallengeRepository
	issuer        domain.TokenIssuer
	tokenExpiry   time.Duration
}

// NewAuthService creates the wallet-signature login service. A caller proves
// control of an address by signing a server-issued nonce with the address's
// ed25519 key; the session token's subject is the address itself, mirroring
// how the chain derives caller identity from the transaction signature.
func NewAuthService(challengeRepo domain.ChallengeRepository, issuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		challengeRepo: challengeRepo,
		issuer:        issuer,
		tokenExpiry:   tokenExpiry,
	}
}

func (s *authService) RequestChallenge(ctx context.Context, address string) (string, error) {
	if _, err := types.DecodeAddress(address); err != nil {
		return "", domain.ErrInvalidAddress
	}

	nonceBytes := make([]byte, 32)
	if _, err := rand.Read(nonceBytes); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	nonce := hex.EncodeToString(nonceBytes)

	hash, err := hashChallenge(nonce)
	if err != nil {
		return "", fmt.Errorf("failed to hash nonce: %w", err)
	}
	if err := s.challengeRepo.Create(ctx, address, hash, time.Now().Add(challengeExpiry)); err != nil {
		return "", fmt.Errorf("store challenge: %w", err)
	}
	return nonce, nil
}

func (s *authService) Login(ctx context.Context, address, nonce string, signature []byte) (string, error) {
	addr, err := types.DecodeAddress(address)
	if err != nil {
		return "", domain.ErrInvalidAddress
	}

	challenge, err := s.challengeRepo.GetLatest(ctx, address)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidChallenge) {
			return "", domain.ErrInvalidChallenge
		}
		return "", fmt.Errorf("get challenge: %w", err)
	}
	if compareChallenge(challenge.NonceHash, nonce) != nil {
		return "", domain.ErrInvalidChallenge
	}

	// An Algorand address is the account's ed25519 public key.
	if !ed25519.Verify(ed25519.PublicKey(addr[:]), []byte(nonce), signature) {
		return "", domain.ErrInvalidSignature
	}

	// One-time use: a consumed nonce cannot log in again.
	if err := s.challengeRepo.Delete(ctx, challenge.ID); err != nil {
		return "", fmt.Errorf("consume challenge: %w", err)
	}

	token, err := s.issuer.Issue(address, s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// hashChallenge runs the nonce through SHA256 before bcrypt, keeping the
// bcrypt input under its 72-byte limit.
func hashChallenge(nonce string) (string, error) {
	sum := sha256.Sum256([]byte(nonce))
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(sum[:])), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func compareChallenge(hash, nonce string) error {
	sum := sha256.Sum256([]byte(nonce))
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(hex.EncodeToString(sum[:])))
}
