// Package main is the entry point for the travel booking API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/joho/godotenv"

	"github.com/pkordes/travel-booking/internal/auth"
	"github.com/pkordes/travel-booking/internal/config"
	"github.com/pkordes/travel-booking/internal/handler"
	"github.com/pkordes/travel-booking/internal/handler/gen"
	"github.com/pkordes/travel-booking/internal/middleware"
	"github.com/pkordes/travel-booking/internal/repo"
	"github.com/pkordes/travel-booking/internal/service"
	"github.com/pkordes/travel-booking/internal/ticket"
	"github.com/pkordes/travel-booking/migrations"
	"github.com/pkordes/travel-booking/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	// A .env file is optional; variables already in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to read .env file", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// goose needs database/sql, not a pgx pool.
	if err := migrate(context.Background(), cfg.DatabaseURL, logger); err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	// --- Dependencies -----------------------------------------------------
	destinationRepo := repo.NewDestinationRepo(pool)
	packageRepo := repo.NewPackageRepo(pool)
	bookingRepo := repo.NewBookingRepo(pool)
	userRepo := repo.NewUserRepo(pool)
	profileRepo := repo.NewProfileRepo(pool)

	catalogSvc := service.NewCatalogService(destinationRepo, packageRepo)
	bookingSvc := service.NewBookingService(packageRepo, bookingRepo)
	accountSvc := service.NewAccountService(userRepo, profileRepo)

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	tickets := ticket.NewRenderer(cfg.TicketBaseURL)

	server := handler.NewServer(catalogSvc, bookingSvc, accountSvc, tokens, tickets)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order:
	// RequestID → RealIP → Logger → Recoverer → CORS → MaxBodySize → Authenticator.
	// CORS runs before authentication so preflight requests never need a token.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewAuthenticator(tokens, logger))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	// gen.NewStrictHandlerWithOptions adapts our StrictServerInterface
	// implementation to the lower-level ServerInterface chi expects.
	strict := gen.NewStrictHandlerWithOptions(server, nil, handler.StrictOptions(logger))
	r.Mount("/", gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		ErrorHandlerFunc: handler.ParamErrorHandler,
	}))

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies pending schema migrations over a short-lived database/sql handle.
func migrate(ctx context.Context, dsn string, log *slog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	return migrations.Up(ctx, db, log)
}
