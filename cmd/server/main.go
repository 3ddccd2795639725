// Package main runs the AlgoSphere ticketing registry HTTP server.
package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"algosphere/config"
	"algosphere/internal/adapters/algorand"
	authadapter "algosphere/internal/adapters/auth"
	emailadapter "algosphere/internal/adapters/email"
	"algosphere/internal/clock"
	delivery "algosphere/internal/delivery/http"
	"algosphere/internal/delivery/http/controllers"
	"algosphere/internal/delivery/http/middleware"
	"algosphere/internal/repository/postgres"
	"algosphere/internal/services"
	"algosphere/migrations"

	_ "algosphere/docs"
)

const serviceTimeout = 10 * time.Second

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	if err := migrations.Apply(ctx, db); err != nil {
		logger.Error("migrate", "err", err)
		os.Exit(1)
	}

	ledger, err := algorand.New(cfg.AlgodAddress, cfg.AlgodToken, cfg.ServiceMnemonic, logger)
	if err != nil {
		logger.Error("algorand ledger", "err", err)
		os.Exit(1)
	}
	logger.Info("ledger connected", "algod", cfg.AlgodAddress, "service_account", ledger.ServiceAddress())

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("mailer", "err", err)
		os.Exit(1)
	}

	// Repositories
	clubRepo := postgres.NewClubRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	challengeRepo := postgres.NewChallengeRepository(db)

	// Services
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
	registryService := services.NewRegistryService(clubRepo, eventRepo, emailService, logger, serviceTimeout)
	eventService := services.NewEventService(clubRepo, eventRepo, ledger, clock.NewSystem(), logger, serviceTimeout)
	ticketService := services.NewTicketService(eventRepo, ledger, logger, serviceTimeout)
	authService := services.NewAuthService(challengeRepo, authadapter.NewJWTIssuer(cfg.JWTSecret), cfg.JWTExpiry)
	verifier := authadapter.NewJWTVerifier(cfg.JWTSecret)

	// Controllers
	authController := controllers.NewAuthController(logger, authService)
	clubController := controllers.NewClubController(logger, registryService)
	eventController := controllers.NewEventController(logger, eventService, registryService)
	ticketController := controllers.NewTicketController(logger, ticketService)

	mux := delivery.NewRouter(authController, clubController, eventController, ticketController, verifier, logger)
	var handler http.Handler = middleware.LoggingMiddleware(logger, mux)
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
