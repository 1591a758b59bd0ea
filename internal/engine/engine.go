package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pickwin/numpool/internal/domain"
)

type PoolRepo interface {
	FindDueForStart(ctx context.Context, now time.Time, limit uint32) ([]domain.Pool, error)
	FindDueForCompletion(ctx context.Context, now time.Time, limit uint32) ([]domain.Pool, error)
}

// Lifecycle advances a single pool through its phase transitions.
type Lifecycle interface {
	Activate(ctx context.Context, poolID string) error
	Settle(ctx context.Context, poolID string) error
}

// Service ticks once per second and pushes every pool whose deadline has
// passed through its next phase: waiting pools past starts_at become active,
// active pools past ends_at get settled.
type Service struct {
	poolRepo     PoolRepo
	lifecycle    Lifecycle
	limit        uint32
	workerPool   WorkerPoolI
	tickInterval time.Duration

	transitioning sync.Map
}

func New(poolRepo PoolRepo, lifecycle Lifecycle) *Service {
	return &Service{
		poolRepo:     poolRepo,
		lifecycle:    lifecycle,
		limit:        1000,
		workerPool:   NewWorkerPool(10),
		tickInterval: time.Second,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Game phase engine started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping game phase engine")
			return
		case <-ticker.C:
			s.advancePools(ctx)
		}
	}
}

func (s *Service) advancePools(ctx context.Context) {
	now := time.Now()

	starting, err := s.poolRepo.FindDueForStart(ctx, now, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch pools due for start", zap.Error(err))
		return
	}
	ending, err := s.poolRepo.FindDueForCompletion(ctx, now, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch pools due for completion", zap.Error(err))
		return
	}

	var g errgroup.Group
	s.dispatch(ctx, &g, starting, s.lifecycle.Activate)
	s.dispatch(ctx, &g, ending, s.lifecycle.Settle)

	if err := g.Wait(); err != nil {
		zap.L().Error("Error advancing pools", zap.Error(err))
	}
}

func (s *Service) dispatch(ctx context.Context, g *errgroup.Group, pools []domain.Pool, advance func(ctx context.Context, poolID string) error) {
	for _, pool := range pools {
		pool := pool

		if _, loaded := s.transitioning.LoadOrStore(pool.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.transitioning.Delete(pool.ID)
				return advance(ctx, pool.ID)
			})
			if err != nil {
				s.transitioning.Delete(pool.ID)
				return err
			}
			return nil
		})
	}
}
