package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"algosphere/internal/clock"
	"algosphere/internal/domain"
)

type eventService struct {
	clubRepo       domain.ClubRepository
	eventRepo      domain.EventRepository
	ledger         domain.AssetLedger
	clock          clock.Clock
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewEventService creates the service that turns a club's event parameters
// into a minted ticket asset plus a persisted event record.
func NewEventService(clubRepo domain.ClubRepository,
	eventRepo domain.EventRepository,
	ledger domain.AssetLedger,
	clk clock.Clock,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		clubRepo:       clubRepo,
		eventRepo:      eventRepo,
		ledger:         ledger,
		clock:          clk,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// CreateEvent validates the parameters, mints the ticket asset, and persists
// the event. Checks run in a fixed order and each failure aborts with its own
// condition. The mint happens before the insert so a mint failure commits
// nothing.
func (s *eventService) CreateEvent(ctx context.Context, clubAddress, name, venue string, date int64, price, ticketCount uint64) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	_, err := s.clubRepo.GetByAddress(ctx, clubAddress)
	if err != nil {
		if errors.Is(err, domain.ErrClubNotFound) {
			return nil, domain.ErrNotAuthorized
		}
		return nil, fmt.Errorf("check registration: %w", err)
	}

	if date <= s.clock.Now().Unix() {
		return nil, domain.ErrInvalidSchedule
	}
	if price == 0 {
		return nil, domain.ErrInvalidPrice
	}
	if ticketCount == 0 || ticketCount > domain.MaxTicketsPerEvent {
		return nil, domain.ErrInvalidCapacity
	}

	assetID, err := s.ledger.MintTicketAsset(ctx, name, ticketCount)
	if err != nil {
		return nil, fmt.Errorf("mint ticket asset: %w", err)
	}

	event := domain.NewEvent(clubAddress, name, venue, date, price, ticketCount, assetID, time.Now())
	if err := s.eventRepo.Create(ctx, event); err != nil {
		// The asset is already on-chain; its whole supply stays in the
		// service account, so the orphan is inert.
		s.logger.ErrorContext(ctx, "event insert failed after mint", "asset_id", assetID, "err", err)
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.InfoContext(ctx, "event created",
		"event_id", event.ID, "club", clubAddress, "asset_id", assetID, "total", ticketCount)
	return event, nil
}
