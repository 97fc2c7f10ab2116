// Package server initializes and runs the exercise tracker.
// It connects the user store, wires the optional Redis cache, starts the
// HTTP API and the gRPC health service, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/exercisetracker/internal/logging"
	"github.com/dmitrijs2005/exercisetracker/internal/server/config"
	"github.com/dmitrijs2005/exercisetracker/internal/server/httpapi"
	"github.com/dmitrijs2005/exercisetracker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/exercisetracker/internal/server/repositories/users"
	"github.com/dmitrijs2005/exercisetracker/internal/server/services"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/exercisetracker/internal/server/grpc"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	store           repomanager.RepositoryManager
	cache           *redis.Client
	userService     *services.UserService
	exerciseService *services.ExerciseService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	store, err := repomanager.NewRepositoryManager(ctx, c.DatabaseDSN, c.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := store.RunMigrations(ctx); err != nil {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	var repo users.Repository = store.Users()
	var cache *redis.Client
	if c.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})
		repo = users.NewCachedRepository(repo, cache, c.CacheTTL, logger)
	}

	return &App{
		config:          c,
		logger:          logger,
		store:           store,
		cache:           cache,
		userService:     services.NewUserService(repo, logger),
		exerciseService: services.NewExerciseService(repo, logger),
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	router := httpapi.NewRouter(httpapi.RouterOptions{
		RateLimit:  app.config.RateLimit,
		RateWindow: app.config.RateWindow,
		StaticDir:  app.config.StaticDir,
		IndexFile:  app.config.IndexFile,
	}, app.logger, app.userService, app.exerciseService)

	s := httpapi.NewServer(app.config.HTTPAddr, router, app.config.ShutdownTimeout, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewHealthServer(app.config.GRPCAddr, app.logger, app.store, app.config.HealthInterval)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) close(ctx context.Context) {
	if app.cache != nil {
		if err := app.cache.Close(); err != nil {
			app.logger.Error(ctx, "cache close error", "error", err)
		}
	}

	sctx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()
	if err := app.store.Close(sctx); err != nil {
		app.logger.Error(ctx, "store close error", "error", err)
	}
}

// Run serves until ctx is cancelled, a termination signal arrives or one of
// the servers fails, then releases the store.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.config.GRPCAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startGRPCServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	app.close(ctx)
	app.logger.Info(ctx, "App stopped")
}
