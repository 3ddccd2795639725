package domain

import (
	"context"
	"time"
)

// Club represents a registered organization, keyed by its wallet address.
// A club registers once; the record is immutable afterwards and its presence
// is the sole authorization for creating events.
// swagger:model Club
type Club struct {
	Address   string    `json:"address"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewClub returns a new Club with the given fields.
func NewClub(address, name string, createdAt time.Time) *Club {
	return &Club{
		Address:   address,
		Name:      name,
		CreatedAt: createdAt,
	}
}

// ClubRepository defines the interface for club storage
type ClubRepository interface {
	Create(ctx context.Context, club *Club) error
	GetByAddress(ctx context.Context, address string) (*Club, error)
}

// RegistryService defines the business logic for club registration and the
// read-only registry lookups.
type RegistryService interface {
	Register(ctx context.Context, address, name, contact string) (*Club, error)
	GetClubName(ctx context.Context, address string) (string, error)
	IsClubRegistered(ctx context.Context, address string) (bool, error)
	GetEventDetails(ctx context.Context, eventID int64) (*Event, error)
	GetTotalEvents(ctx context.Context) (int64, error)
	ListEvents(ctx context.Context, params PaginationParams) ([]*Event, int, error)
}
