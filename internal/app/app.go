package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/timetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/timeentry"
	"github.com/heartmarshall/timetrack-backend/internal/auth"
	"github.com/heartmarshall/timetrack-backend/internal/config"
	"github.com/heartmarshall/timetrack-backend/internal/service/timetrack"
	"github.com/heartmarshall/timetrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/timetrack-backend/internal/transport/rest"
	"github.com/heartmarshall/timetrack-backend/pkg/clock"
)

// Run is the application entry point. It loads configuration, connects to
// the database, serves HTTP until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Tracking.Location.String()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	schema := schemaStatus{pool: pool}
	if err := schema.CheckSchema(ctx); err != nil {
		// Serve anyway; /health reports the schema as outdated.
		logger.Warn("schema check failed", slog.String("error", err.Error()))
	}

	handler, limiter := buildHandler(cfg, logger, pool, schema)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// buildHandler wires repositories, the service and the HTTP surface.
func buildHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	schema schemaStatus,
) (http.Handler, *middleware.RateLimiter) {
	txm := postgres.NewTxManager(pool)

	svc := timetrack.NewService(
		logger,
		timeentry.New(pool),
		catalog.New(pool),
		txm,
		clock.Real{},
		timetrack.Config{
			Location:       cfg.Tracking.Location,
			MaxManualHours: cfg.Tracking.MaxManualHours,
			DefaultLimit:   cfg.Tracking.DefaultLimit,
			MaxLimit:       cfg.Tracking.MaxLimit,
		},
	)

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	handler := NewRouter(RouterDeps{
		Logger:      logger,
		Health:      rest.NewHealthHandler(pool, schema, BuildVersion()),
		TimeTrack:   rest.NewTimeTrackHandler(svc, clock.Real{}, logger),
		Tokens:      jwtMgr,
		RateLimiter: limiter,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
	})
	return handler, limiter
}
