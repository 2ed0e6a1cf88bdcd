package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"likeat/internal/auth"
	"likeat/internal/catalog"
	"likeat/internal/config"
	"likeat/internal/logger"
	"likeat/internal/restaurant"
	"likeat/internal/router"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()

	if err != nil {
		log.WithError(err).Error("API stopped")
		os.Exit(1)
	}
	log.Info("API stopped")
}

// run serves the API until ctx is done or the listener fails. Every
// resource it opens is released before it returns.
func run(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) error {

	// ───────────────────────── AUTH ─────────────────────────
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, 0)
	if err != nil {
		return fmt.Errorf("token manager init: %w", err)
	}

	// ───────────────────────── CATALOG ─────────────────────────
	cat, err := catalog.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("catalog init: %w", err)
	}
	defer cat.Close()

	// ───────────────────────── ROUTES ─────────────────────────
	r := router.NewRouter(router.Deps{
		Log:         log,
		Tokens:      tokens,
		Restaurants: restaurant.NewHandler(cat.Restaurants),
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ───────────────────────── START ─────────────────────────
	serveErr := make(chan error, 1)
	go func() {
		log.Infof("API running at http://localhost:%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
