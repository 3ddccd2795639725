package domain

import (
	"context"
	"time"
)

// MaxTicketsPerEvent is the hard cap on tickets for a single event; it matches
// the practical minting ceiling of the ticket asset system.
const MaxTicketsPerEvent = 10000

// Event represents a ticketed event. Tickets are units of an externally minted
// fungible asset; the registry tracks only the aggregate sold count. Date is a
// Unix timestamp and Price is in microAlgos, as supplied by the organizer.
// Only Sold mutates after creation; events are never deleted.
// swagger:model Event
type Event struct {
	ID          int64     `json:"id"`
	ClubAddress string    `json:"club_address"`
	Name        string    `json:"name"`
	Venue       string    `json:"venue"`
	Date        int64     `json:"date"`
	Price       uint64    `json:"price"`
	Total       uint64    `json:"total"`
	Sold        uint64    `json:"sold"`
	AssetID     uint64    `json:"asset_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewEvent returns a new Event with sold initialized to zero. ID is set by the
// repository on create from its owned sequence.
func NewEvent(clubAddress, name, venue string, date int64, price, total, assetID uint64, createdAt time.Time) *Event {
	return &Event{
		ClubAddress: clubAddress,
		Name:        name,
		Venue:       venue,
		Date:        date,
		Price:       price,
		Total:       total,
		Sold:        0,
		AssetID:     assetID,
		CreatedAt:   createdAt,
	}
}

// EventRepository defines the interface for event storage.
//
// WithTx runs fn inside a single database transaction; repository calls made
// with the context passed to fn join that transaction. GetByIDForUpdate locks
// the event row for the remainder of the transaction, serializing concurrent
// purchases of the same event.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, limit, offset int) ([]*Event, error)

	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetByIDForUpdate(ctx context.Context, id int64) (*Event, error)
	IncrementSold(ctx context.Context, id int64) error
	ConsumePayment(ctx context.Context, txID string, eventID int64, buyer string) error
}

// TicketService defines the business logic for ticket purchase and
// verification.
type TicketService interface {
	BuyTicket(ctx context.Context, eventID int64, buyer, paymentTxID string) (*Event, error)
	VerifyTicket(ctx context.Context, eventID int64, attendee string) (bool, error)
}

// EventService defines the business logic for event creation.
type EventService interface {
	CreateEvent(ctx context.Context, clubAddress, name, venue string, date int64, price, ticketCount uint64) (*Event, error)
}
