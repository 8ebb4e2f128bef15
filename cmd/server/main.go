package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"reading-prefs-go/internal/config"
	"reading-prefs-go/internal/database"
	httpserver "reading-prefs-go/internal/http"
	"reading-prefs-go/internal/logging"
	"reading-prefs-go/internal/preferences"
	"reading-prefs-go/internal/users"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cfg.Validate(); err != nil {
		log.Error(ctx, "invalid configuration", "error", err)
		os.Exit(1)
	}

	// nothing is served until the database answers
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Error(ctx, "database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn(context.Background(), "closing database", "error", err)
		}
	}()
	if err := database.Migrate(db); err != nil {
		log.Error(ctx, "database migration failed", "error", err)
		os.Exit(1)
	}
	log.Info(ctx, "database connected")

	gin.SetMode(gin.ReleaseMode)
	accounts := users.NewService(users.NewGormRepository(db), log.With("component", "users"))
	prefs := preferences.NewService(preferences.NewGormRepository(db), log.With("component", "preferences"))
	r := httpserver.NewServer(cfg, accounts, prefs, log.With("component", "http"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server stopped", "error", err)
		}
	case <-ctx.Done():
		log.Info(context.Background(), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error(shutdownCtx, "shutdown", "error", err)
		}
	}
}
