// Package server initializes and runs the chirpy application: configuration,
// database, migrations, the HTTP server and the background sweep of expired
// refresh tokens, with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/avekseev/chirpy/internal/logging"
	"github.com/avekseev/chirpy/internal/server/auth"
	"github.com/avekseev/chirpy/internal/server/config"
	"github.com/avekseev/chirpy/internal/server/httpserver"
	"github.com/avekseev/chirpy/internal/server/metrics"
	"github.com/avekseev/chirpy/internal/server/repositories/repomanager"
	"github.com/avekseev/chirpy/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	metrics *metrics.Metrics

	sessionService *services.SessionService
	httpServer     *httpserver.Server
	cron           *cron.Cron
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	hasher := auth.NewHasher(cfg.HashWorkers)
	mx := metrics.New()

	userService := services.NewUserService(db, m, hasher)
	sessionService := services.NewSessionService(db, m, hasher, cfg)
	chirpService := services.NewChirpService(db, m)

	srv := httpserver.NewServer(cfg, logger, mx, userService, sessionService, chirpService)

	app := &App{
		config:         cfg,
		logger:         logger,
		db:             db,
		metrics:        mx,
		sessionService: sessionService,
		httpServer:     srv,
		cron:           cron.New(),
	}

	if _, err := app.cron.AddFunc(cfg.SweepSchedule, app.sweepExpiredTokens); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", cfg.SweepSchedule, err)
	}

	return app, nil
}

// sweepExpiredTokens garbage-collects expired refresh tokens on the cron
// schedule.
func (app *App) sweepExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := app.sessionService.SweepExpired(ctx)
	if err != nil {
		app.logger.Error(ctx, "refresh token sweep failed", "error", err)
		return
	}
	app.metrics.SweptTokensTotal.Add(float64(n))
	app.logger.Info(ctx, "refresh token sweep completed", "deleted", n)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts the HTTP server and the sweep scheduler and blocks until the
// context is cancelled or the listener fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.Addr, "platform", app.config.Platform)

	app.initSignalHandler(cancelFunc)
	app.cron.Start()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Start(); err != nil {
			app.logger.Error(ctx, "http server error", "error", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()
	app.shutdown()
	wg.Wait()
}

func (app *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	app.logger.Info(ctx, "shutting down")

	cronCtx := app.cron.Stop()
	if err := app.httpServer.Shutdown(ctx); err != nil {
		app.logger.Error(ctx, "http server shutdown error", "error", err)
	}
	<-cronCtx.Done()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
