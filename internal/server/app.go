// Package server initializes and runs the application: config validation,
// storage backend selection, sample-data seeding, and the HTTP API with
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/skillbridge/internal/logging"
	"github.com/dmitrijs2005/skillbridge/internal/server/backend"
	"github.com/dmitrijs2005/skillbridge/internal/server/config"
	"github.com/dmitrijs2005/skillbridge/internal/server/httpapi"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/skillbridge/internal/server/services"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	selector *backend.Selector
	durable  *repomanager.PostgresRepositoryManager
	repos    *repomanager.SelectingRepositoryManager
	httpSrv  *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	durable, err := repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	selector := backend.NewSelector()
	repos := repomanager.NewSelectingRepositoryManager(selector, repomanager.NewInMemoryRepositoryManager(), durable)

	userSvc := services.NewUserService(repos, cfg, logger)
	courseSvc := services.NewCourseService(repos, logger)
	sessionSvc := services.NewSessionService(repos, logger)
	doubtSvc := services.NewDoubtService(repos, logger)

	httpSrv := httpapi.NewServer(cfg, userSvc, courseSvc, sessionSvc, doubtSvc, logger)

	return &App{
		config:   cfg,
		logger:   logger,
		selector: selector,
		durable:  durable,
		repos:    repos,
		httpSrv:  httpSrv,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// resolveBackend probes the durable backend and settles the storage mode.
// Migrations run inside the probe so the durable mode is only published with
// the schema in place; any failure leaves the process on volatile storage.
// Seeding runs afterwards against whichever backend won.
func (app *App) resolveBackend(ctx context.Context) {
	err := app.selector.Probe(ctx, func(ctx context.Context) error {
		if err := app.durable.Conn().PingContext(ctx); err != nil {
			return err
		}
		return app.repos.RunMigrations(ctx)
	}, app.config.ProbeTimeout)
	if err != nil {
		app.logger.Warn(ctx, "durable storage unavailable, using in-memory storage", "error", err)
	}

	app.logger.Info(ctx, "storage mode resolved", "mode", app.selector.Mode().String())

	if app.config.SeedSampleData {
		if err := services.SeedSampleData(ctx, app.repos, app.logger); err != nil {
			app.logger.Error(ctx, "sample data seeding failed", "error", err)
		}
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.resolveBackend(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpSrv.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if db := app.durable.Conn(); db != nil {
		if err := db.Close(); err != nil {
			app.logger.Error(ctx, "error closing db", "error", err)
		}
	}
}
