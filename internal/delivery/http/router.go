package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"algosphere/internal/delivery/http/controllers"
	"algosphere/internal/delivery/http/middleware"
	"algosphere/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Write operations require a wallet session; reads are public, matching the
// contract's read-only methods.
func NewRouter(
	authController *controllers.AuthController,
	clubController *controllers.ClubController,
	eventController *controllers.EventController,
	ticketController *controllers.TicketController,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/challenge", authController.Challenge)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Clubs
	mux.HandleFunc("POST /clubs", auth(clubController.Register))
	mux.HandleFunc("GET /clubs/{address}", clubController.GetClubName)
	mux.HandleFunc("GET /clubs/{address}/registered", clubController.IsRegistered)

	// Events
	mux.HandleFunc("POST /events", auth(eventController.CreateEvent))
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/count", eventController.GetTotalEvents)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEventByID)

	// Tickets
	mux.HandleFunc("POST /events/{eventID}/tickets", auth(ticketController.BuyTicket))
	mux.HandleFunc("GET /events/{eventID}/verify/{address}", ticketController.VerifyTicket)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
