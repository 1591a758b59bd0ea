package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pickwin/numpool/internal/config"
	"github.com/pickwin/numpool/internal/engine"
	"github.com/pickwin/numpool/internal/handlers"
	"github.com/pickwin/numpool/internal/pg"
	"github.com/pickwin/numpool/internal/realtime"
	"github.com/pickwin/numpool/internal/repo"
	"github.com/pickwin/numpool/internal/service"
	"github.com/pickwin/numpool/pkg/auth"
	"github.com/pickwin/numpool/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	engine *engine.Service
	hub    *realtime.Hub
	broker *realtime.Broker

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
	if err := rdb.Ping(ctx).Err(); err != nil {
		zap.L().Error("redis ping failed: ", zap.Error(err))
		return fmt.Errorf("can't connect to redis: %w", err)
	}

	a.cfg = cfg
	a.hub = realtime.NewHub()
	a.broker = realtime.NewBroker(rdb, a.hub)
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(cfg, a.repo, a.broker)
	a.api = handlers.New(a.srv, a.hub)
	a.engine = engine.New(a.repo.PoolRepo, a.srv.Pool)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startRealtime(ctx)
	a.startEngine(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startRealtime(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.hub.Run(ctx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.broker.Run(ctx)
	}()
}

func (a *Application) startEngine(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.engine.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
