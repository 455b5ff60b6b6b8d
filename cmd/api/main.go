package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/vaultpass/pwgen-go/internal/config"
	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/generator"
	"github.com/vaultpass/pwgen-go/internal/handler"
	"github.com/vaultpass/pwgen-go/internal/middleware"
	"github.com/vaultpass/pwgen-go/internal/repository"
	"github.com/vaultpass/pwgen-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	tokens := crypto.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)
	limits := service.GeneratorLimits{
		MaxLength:          cfg.MaxLength,
		MaxAmountAnonymous: cfg.MaxAmountAnonymous,
		MaxAmountUser:      cfg.MaxAmountUser,
	}

	// Auth, history and auditing need the database; generation does not.
	db := openDB(cfg.DatabaseDSN)

	var events service.EventStore
	if db != nil {
		events = repository.NewEventRepository(db)
	}
	genService := service.NewGeneratorService(generator.New(crypto.DefaultSource()), limits, events)
	genHandler := handler.NewGeneratorHandler(genService)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalJWTAuth(tokens))
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	if db != nil {
		userRepo := repository.NewUserRepository(db)
		authService := service.NewAuthService(userRepo, crypto.NewHasher(crypto.DefaultHashParams()), tokens, cfg.MaxAmountUser)
		authHandler := handler.NewAuthHandler(authService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst))
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(tokens))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)
			r.Get("/api/v1/generate/history", genHandler.HandleHistory)
		})
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "database", db != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}
	if db != nil {
		db.Close()
	}

	slog.Info("server stopped")
}

// openDB connects and migrates the database, or returns nil when it is
// unavailable.
func openDB(dsn string) *sql.DB {
	db, err := repository.NewDB(dsn)
	if err != nil {
		slog.Warn("database connection failed, auth and history routes disabled", "error", err)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repository.Migrate(ctx, db); err != nil {
		slog.Warn("database migration failed, auth and history routes disabled", "error", err)
		db.Close()
		return nil
	}
	return db
}
