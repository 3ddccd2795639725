package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"algosphere/internal/domain"
)

type registryService struct {
	clubRepo       domain.ClubRepository
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewRegistryService creates the registry service handling club registration
// and the read-only lookups.
func NewRegistryService(clubRepo domain.ClubRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RegistryService {
	return &registryService{
		clubRepo:       clubRepo,
		eventRepo:      eventRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// Register creates the club record for the caller's address. Each address can
// register at most once. The contact is never persisted; it is only used to
// send a best-effort welcome email.
func (s *registryService) Register(ctx context.Context, address, name, contact string) (*domain.Club, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("club name is required")
	}

	_, err := s.clubRepo.GetByAddress(ctx, address)
	if err == nil {
		return nil, domain.ErrClubAlreadyRegistered
	}
	if !errors.Is(err, domain.ErrClubNotFound) {
		return nil, fmt.Errorf("check registration: %w", err)
	}

	club := domain.NewClub(address, name, time.Now())
	if err := s.clubRepo.Create(ctx, club); err != nil {
		if errors.Is(err, domain.ErrClubAlreadyRegistered) {
			return nil, domain.ErrClubAlreadyRegistered
		}
		return nil, fmt.Errorf("create club: %w", err)
	}

	if contact != "" {
		// Registration does not depend on email delivery.
		go func() {
			data := &domain.ClubWelcomeEmailData{Contact: contact, ClubName: name, Address: address}
			if err := s.emailService.SendClubWelcome(context.Background(), data); err != nil {
				s.logger.Error("welcome email failed", "address", address, "err", err)
			}
		}()
	}

	return club, nil
}

func (s *registryService) GetClubName(ctx context.Context, address string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	club, err := s.clubRepo.GetByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, domain.ErrClubNotFound) {
			return "", domain.ErrClubNotFound
		}
		return "", fmt.Errorf("get club: %w", err)
	}
	return club.Name, nil
}

// IsClubRegistered never fails on a missing record; absence is a valid answer.
func (s *registryService) IsClubRegistered(ctx context.Context, address string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	_, err := s.clubRepo.GetByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, domain.ErrClubNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get club: %w", err)
	}
	return true, nil
}

func (s *registryService) GetEventDetails(ctx context.Context, eventID int64) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *registryService) GetTotalEvents(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	n, err := s.eventRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

func (s *registryService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	total, err := s.eventRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}
	events, err := s.eventRepo.List(ctx, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, int(total), nil
}
