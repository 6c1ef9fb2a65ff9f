// Package server arranca la API HTTP con la configuración ya validada.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	pg "colonoscopy-prep/internal/adapters/storage/postgres"
	"colonoscopy-prep/internal/config"
	"colonoscopy-prep/internal/platform/logger"
	"colonoscopy-prep/internal/router"
)

const shutdownTimeout = 10 * time.Second

func NewLogger(cfg *config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
}

// Run bloquea hasta que ctx se cancela (SIGINT/SIGTERM) o el servidor falla.
func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	opts := router.Options{Config: cfg, Logger: log}

	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer db.Close()

		if err := pg.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		opts.DB = db
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
