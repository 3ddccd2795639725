package controllers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/types"

	"algosphere/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// testAddr returns a syntactically valid Algorand address derived from the
// seed byte, so path validation passes.
func testAddr(seed byte) string {
	var a types.Address
	for i := range a {
		a[i] = seed
	}
	return a.String()
}

type fakeRegistryService struct {
	registerResult *domain.Club
	registerErr    error
	lastRegister   struct{ address, name, contact string }

	clubName    string
	clubNameErr error

	registered    bool
	registeredErr error

	eventDetails    *domain.Event
	eventDetailsErr error

	totalEvents    int64
	totalEventsErr error

	listResult []*domain.Event
	listTotal  int
	listErr    error
	lastParams domain.PaginationParams
}

func (f *fakeRegistryService) Register(ctx context.Context, address, name, contact string) (*domain.Club, error) {
	f.lastRegister = struct{ address, name, contact string }{address, name, contact}
	return f.registerResult, f.registerErr
}

func (f *fakeRegistryService) GetClubName(ctx context.Context, address string) (string, error) {
	return f.clubName, f.clubNameErr
}

func (f *fakeRegistryService) IsClubRegistered(ctx context.Context, address string) (bool, error) {
	return f.registered, f.registeredErr
}

func (f *fakeRegistryService) GetEventDetails(ctx context.Context, eventID int64) (*domain.Event, error) {
	return f.eventDetails, f.eventDetailsErr
}

func (f *fakeRegistryService) GetTotalEvents(ctx context.Context) (int64, error) {
	return f.totalEvents, f.totalEventsErr
}

func (f *fakeRegistryService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	f.lastParams = params
	return f.listResult, f.listTotal, f.listErr
}

type fakeEventService struct {
	createResult *domain.Event
	createErr    error
	lastCreate   struct {
		clubAddress, name, venue string
		date                     int64
		price, ticketCount       uint64
	}
}

func (f *fakeEventService) CreateEvent(ctx context.Context, clubAddress, name, venue string, date int64, price, ticketCount uint64) (*domain.Event, error) {
	f.lastCreate = struct {
		clubAddress, name, venue string
		date                     int64
		price, ticketCount       uint64
	}{clubAddress, name, venue, date, price, ticketCount}
	return f.createResult, f.createErr
}

type fakeTicketService struct {
	buyResult *domain.Event
	buyErr    error
	lastBuy   struct {
		eventID     int64
		buyer, txID string
	}

	verifyResult bool
	verifyErr    error
}

func (f *fakeTicketService) BuyTicket(ctx context.Context, eventID int64, buyer, paymentTxID string) (*domain.Event, error) {
	f.lastBuy = struct {
		eventID     int64
		buyer, txID string
	}{eventID, buyer, paymentTxID}
	return f.buyResult, f.buyErr
}

func (f *fakeTicketService) VerifyTicket(ctx context.Context, eventID int64, attendee string) (bool, error) {
	return f.verifyResult, f.verifyErr
}

type fakeAuthService struct {
	nonce        string
	challengeErr error

	token     string
	loginErr  error
	lastLogin struct {
		address, nonce string
		signature      []byte
	}
}

func (f *fakeAuthService) RequestChallenge(ctx context.Context, address string) (string, error) {
	return f.nonce, f.challengeErr
}

func (f *fakeAuthService) Login(ctx context.Context, address, nonce string, signature []byte) (string, error) {
	f.lastLogin = struct {
		address, nonce string
		signature      []byte
	}{address, nonce, signature}
	return f.token, f.loginErr
}

func testEvent(id int64, club string) *domain.Event {
	return &domain.Event{
		ID:          id,
		ClubAddress: club,
		Name:        "Spring Hackathon",
		Venue:       "Main Hall",
		Date:        time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC).Unix(),
		Price:       5_000_000,
		Total:       150,
		Sold:        12,
		AssetID:     1001,
		CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}
