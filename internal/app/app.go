package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/sitebook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitebook-backend/internal/adapter/postgres/store"
	userrepo "github.com/heartmarshall/sitebook-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/sitebook-backend/internal/auth"
	"github.com/heartmarshall/sitebook-backend/internal/config"
	"github.com/heartmarshall/sitebook-backend/internal/schema"
	authsvc "github.com/heartmarshall/sitebook-backend/internal/service/auth"
	"github.com/heartmarshall/sitebook-backend/internal/service/records"
	"github.com/heartmarshall/sitebook-backend/internal/transport/middleware"
	"github.com/heartmarshall/sitebook-backend/internal/transport/rest"
	"github.com/heartmarshall/sitebook-backend/migrations"
)

// Run is the application entry point. It loads configuration from
// configPath (see config.LoadFrom), connects to the database, wires services
// and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	// goose reads the schema version through database/sql.
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	migrator, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	if v, err := migrator.GetDBVersion(ctx); err != nil {
		logger.Warn("schema version unavailable", slog.String("error", err.Error()))
	} else {
		logger.Info("database ready", slog.Int64("schema_version", v))
	}

	// Services
	txm := postgres.NewTxManager(pool)
	engines := records.WithPasswordHashing(store.NewEngines(pool, txm), cfg.Auth.PasswordHashCost)
	recordsService := records.NewService(logger, schema.NewRegistry(), engines)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, userrepo.New(pool), jwtManager)

	// Transport
	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	handler := rest.NewRouter(
		rest.Handlers{
			Records: rest.NewRecordsHandler(recordsService, logger, cfg.Server.MaxBodyBytes),
			Auth:    rest.NewAuthHandler(authService, logger),
			Health:  rest.NewHealthHandler(pool, migrator, Version),
		},
		logger,
		cfg.CORS,
		middleware.Auth(authService),
		limiter.Limit(cfg.Server.LoginRateLimit),
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests for
// at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
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

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
