package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlenaMolokova/cardvalidator/internal/config"
	"github.com/AlenaMolokova/cardvalidator/internal/metrics"
	"github.com/AlenaMolokova/cardvalidator/internal/middleware"
	"github.com/AlenaMolokova/cardvalidator/internal/models"
	"github.com/AlenaMolokova/cardvalidator/internal/router"
	"github.com/AlenaMolokova/cardvalidator/internal/storage"
	"github.com/AlenaMolokova/cardvalidator/internal/usecase"
	"github.com/AlenaMolokova/cardvalidator/internal/validation"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func applyMigrations(databaseURI string) error {
	db, err := sql.Open("pgx", databaseURI)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	log.Println("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var checks models.CheckStorage
	if cfg.DatabaseURI != "" {
		if err := applyMigrations(cfg.DatabaseURI); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}

		db, err := pgxpool.New(ctx, cfg.DatabaseURI)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		store, err := storage.NewStorage(db)
		if err != nil {
			log.Fatalf("Failed to create storage: %v", err)
		}
		checks = store
	} else {
		log.Println("DATABASE_URI not set, check log disabled")
	}

	m := metrics.New()
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, m)
	go limiter.Cleanup(ctx, 5*time.Minute)

	validationUC := usecase.NewValidationUseCase(validation.NewCardNumberValidator(), checks, m)

	srv := &http.Server{
		Addr: cfg.RunAddr,
		Handler: router.SetupRoutes(router.Deps{
			Service:        validationUC,
			RateLimit:      limiter.Middleware,
			Metrics:        m.Handler(),
			AllowedOrigins: cfg.AllowedOrigins,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Failed to shut down server: %v", err)
		}
	}()

	log.Printf("Starting card validator on %s", cfg.RunAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
	log.Println("Server stopped")
}
