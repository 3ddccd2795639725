package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"algosphere/internal/domain"
)

type ticketService struct {
	eventRepo      domain.EventRepository
	ledger         domain.AssetLedger
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewTicketService creates the service handling ticket purchase and
// verification.
func NewTicketService(eventRepo domain.EventRepository,
	ledger domain.AssetLedger,
	logger *slog.Logger,
	timeout time.Duration,
) domain.TicketService {
	return &ticketService{
		eventRepo:      eventRepo,
		ledger:         ledger,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// BuyTicket exchanges a confirmed on-chain payment for one ticket unit.
//
// The original atomic payment+transfer group is re-expressed as a saga: the
// buyer pays the club first and presents the payment txid here. Inside one
// database transaction the event row is locked, the payment is checked against
// the event (receiver, amount, sender, in that order), the txid is consumed so
// it cannot buy twice, the ticket unit is transferred on-chain, and sold is
// incremented. Any failure rolls the whole unit back; a transfer that went
// through before a commit failure leaves the buyer holding a ticket the
// counter missed, which the unique txid record keeps from compounding.
func (s *ticketService) BuyTicket(ctx context.Context, eventID int64, buyer, paymentTxID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	payment, err := s.ledger.GetPayment(ctx, paymentTxID)
	if err != nil {
		return nil, fmt.Errorf("lookup payment: %w", err)
	}
	if payment.ConfirmedRound == 0 {
		return nil, domain.ErrPaymentNotConfirmed
	}

	var event *domain.Event
	err = s.eventRepo.WithTx(ctx, func(txCtx context.Context) error {
		event, err = s.eventRepo.GetByIDForUpdate(txCtx, eventID)
		if err != nil {
			return err
		}
		if event.Sold >= event.Total {
			return domain.ErrSoldOut
		}
		if payment.Receiver != event.ClubAddress {
			return domain.ErrWrongPayee
		}
		if payment.Amount != event.Price {
			return domain.ErrWrongAmount
		}
		if payment.Sender != buyer {
			return domain.ErrPaymentSenderMismatch
		}
		if err := s.eventRepo.ConsumePayment(txCtx, paymentTxID, eventID, buyer); err != nil {
			return err
		}
		if err := s.ledger.TransferTicket(ctx, event.AssetID, buyer); err != nil {
			return fmt.Errorf("transfer ticket: %w", err)
		}
		if err := s.eventRepo.IncrementSold(txCtx, eventID); err != nil {
			return err
		}
		event.Sold++
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "ticket sold",
		"event_id", eventID, "buyer", buyer, "asset_id", event.AssetID, "sold", event.Sold)
	return event, nil
}

// VerifyTicket reports whether the attendee holds at least one unit of the
// event's ticket asset. Ownership lives entirely in the ledger; the registry
// only resolves the event to its asset id.
func (s *ticketService) VerifyTicket(ctx context.Context, eventID int64, attendee string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return false, domain.ErrEventNotFound
		}
		return false, fmt.Errorf("get event: %w", err)
	}

	balance, exists, err := s.ledger.AssetBalance(ctx, attendee, event.AssetID)
	if err != nil {
		return false, fmt.Errorf("asset balance: %w", err)
	}
	return exists && balance > 0, nil
}
