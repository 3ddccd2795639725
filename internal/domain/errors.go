package domain

import "errors"

// Each failure condition of the registry is its own sentinel so callers can
// branch on cause rather than parse messages.
var (
	// Registration.
	ErrClubAlreadyRegistered = errors.New("club already registered")
	ErrClubNotFound          = errors.New("club not registered")

	// Event creation.
	ErrNotAuthorized   = errors.New("only registered clubs can create events")
	ErrInvalidSchedule = errors.New("event must be scheduled for the future")
	ErrInvalidPrice    = errors.New("ticket price must be greater than 0")
	ErrInvalidCapacity = errors.New("ticket count must be between 1 and 10000")

	// Ticket purchase.
	ErrEventNotFound         = errors.New("event not found")
	ErrSoldOut               = errors.New("event sold out")
	ErrWrongPayee            = errors.New("payment must be sent to the event organizer")
	ErrWrongAmount           = errors.New("payment amount must match ticket price exactly")
	ErrPaymentSenderMismatch = errors.New("payment must come from ticket buyer")
	ErrPaymentNotConfirmed   = errors.New("payment transaction not confirmed")
	ErrPaymentAlreadyUsed    = errors.New("payment transaction already used")

	// Auth.
	ErrInvalidAddress   = errors.New("invalid algorand address")
	ErrInvalidChallenge = errors.New("invalid or expired challenge")
	ErrInvalidSignature = errors.New("signature verification failed")
)
