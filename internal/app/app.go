package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/m-drozd/arcadium/internal/config"
	"github.com/m-drozd/arcadium/internal/domain"
	"github.com/m-drozd/arcadium/internal/handlers"
	"github.com/m-drozd/arcadium/internal/metrics"
	"github.com/m-drozd/arcadium/internal/pg"
	"github.com/m-drozd/arcadium/internal/repo"
	"github.com/m-drozd/arcadium/internal/service"
	"github.com/m-drozd/arcadium/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

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

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo)
	a.api = handlers.New(a.srv)

	if err := a.seedDemoData(ctx); err != nil {
		zap.L().Error("seeding failed: ", zap.Error(err))
		return fmt.Errorf("can't seed demo data: %w", err)
	}

	metrics.Init()
	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

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

// seedDemoData inserts the demo post and player. Both inserts are
// ON CONFLICT DO NOTHING, so a restart leaves existing counters alone.
func (a *Application) seedDemoData(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		created, err := a.srv.PostService.CreatePost(ctx, &domain.Post{
			ID:      1,
			Title:   "Example blog post",
			Content: "Hello! This is a blog post",
			Views:   0,
		})
		if err != nil {
			return err
		}
		if created {
			zap.L().Info("seeded demo post", zap.Int("postID", 1))
		} else {
			zap.L().Info("demo post already present", zap.Int("postID", 1))
		}
		return nil
	})
	g.Go(func() error {
		created, err := a.srv.PlayerService.CreatePlayer(ctx, &domain.Player{
			ID:    1,
			Name:  "Alice",
			Money: 1000,
			Level: 1,
		})
		if err != nil {
			return err
		}
		if created {
			zap.L().Info("seeded demo player", zap.Int("playerID", 1))
		} else {
			zap.L().Info("demo player already present", zap.Int("playerID", 1))
		}
		return nil
	})

	return g.Wait()
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
