package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/hidlink/internal/config"
	"github.com/vovakirdan/hidlink/internal/device"
	"github.com/vovakirdan/hidlink/internal/input"
	"github.com/vovakirdan/hidlink/internal/store"
	"github.com/vovakirdan/hidlink/internal/store/sqlite"
	transporthttp "github.com/vovakirdan/hidlink/internal/transport/http"
)

// App wires together the device transport, shortcut store and HTTP layer.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	transport       device.Transport
	store           store.Store
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) (*App, error) {
	st, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	logger.Info().Str("db_path", cfg.DatabasePath).Msg("database initialized")

	var tr device.Transport
	if cfg.DevicePort == "" {
		logger.Warn().Msg("no device port configured, frames will be logged only")
		tr = device.NewLog(logger)
	} else {
		tr, err = device.OpenSerial(cfg.DevicePort, cfg.DeviceBaud, logger)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("init device: %w", err)
		}
	}

	registry := input.DefaultRegistry()
	server := transporthttp.NewServer(tr, registry, st, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		transport:       tr,
		store:           st,
		log:             logger,
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		a.cleanup()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.cleanup()
			return err
		}

		a.cleanup()
		return <-serverErr
	}
}

// cleanup closes the device transport and store.
func (a *App) cleanup() {
	if a.transport != nil {
		if err := a.transport.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close device transport")
		} else {
			a.log.Info().Msg("device transport closed")
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close store")
		} else {
			a.log.Info().Msg("store closed")
		}
	}
}
