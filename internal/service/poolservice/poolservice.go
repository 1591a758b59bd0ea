package poolservice

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pickwin/numpool/internal/domain"
	"github.com/pickwin/numpool/internal/realtime"
)

type PoolRepo interface {
	CreatePool(ctx context.Context, pool *domain.Pool) error
	GetPool(ctx context.Context, poolID string) (*domain.Pool, error)
	ListPools(ctx context.Context, status string) ([]domain.Pool, error)
	MarkActive(ctx context.Context, poolID string, endsAt time.Time) (bool, error)
	MarkCompleted(ctx context.Context, poolID string, winningNumber int) (bool, error)
}

type MembershipRepo interface {
	ListMembers(ctx context.Context, poolID string) ([]domain.Membership, error)
}

type BalanceRepo interface {
	AdjustBalance(ctx context.Context, userID int, delta float64) (*domain.Balance, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, transactionID string, status string) error
}

type ProfileRepo interface {
	IncrementStats(ctx context.Context, userID int, won bool) error
}

type Publisher interface {
	Publish(ctx context.Context, event realtime.Event)
}

var (
	ErrPoolNotFound    = errors.New("pool not found")
	ErrInvalidEntryFee = errors.New("entry fee must be positive")
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrInvalidRange    = errors.New("invalid number range")
)

type Service struct {
	poolRepo        PoolRepo
	membershipRepo  MembershipRepo
	balanceRepo     BalanceRepo
	transactionRepo TransactionRepo
	profileRepo     ProfileRepo
	publisher       Publisher

	preGameDuration time.Duration
	gameDuration    time.Duration
	draw            func(min, max int) int
}

func New(poolRepo PoolRepo, membershipRepo MembershipRepo, balanceRepo BalanceRepo, transactionRepo TransactionRepo, profileRepo ProfileRepo, publisher Publisher, preGameDuration, gameDuration time.Duration) *Service {
	return &Service{
		poolRepo:        poolRepo,
		membershipRepo:  membershipRepo,
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
		profileRepo:     profileRepo,
		publisher:       publisher,
		preGameDuration: preGameDuration,
		gameDuration:    gameDuration,
		draw: func(min, max int) int {
			return min + rand.Intn(max-min+1)
		},
	}
}

func (s *Service) CreatePool(ctx context.Context, gameType string, entryFee float64, capacity, rangeMin, rangeMax int) (*domain.Pool, error) {
	if entryFee <= 0 {
		return nil, ErrInvalidEntryFee
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if rangeMin > rangeMax {
		return nil, ErrInvalidRange
	}

	now := time.Now()
	startsAt := now.Add(s.preGameDuration)
	pool := &domain.Pool{
		ID:        uuid.NewString(),
		GameType:  gameType,
		EntryFee:  entryFee,
		Capacity:  capacity,
		Status:    domain.PoolStatusWaiting,
		RangeMin:  rangeMin,
		RangeMax:  rangeMax,
		StartsAt:  &startsAt,
		CreatedAt: now,
	}

	if err := s.poolRepo.CreatePool(ctx, pool); err != nil {
		zap.L().Error("can't create pool", zap.Error(err))
		return nil, err
	}
	return pool, nil
}

func (s *Service) GetPool(ctx context.Context, poolID string) (*domain.Pool, error) {
	pool, err := s.poolRepo.GetPool(ctx, poolID)
	if err != nil {
		zap.L().Error("failed to get pool", zap.Error(err))
		return nil, err
	}
	if pool == nil {
		return nil, ErrPoolNotFound
	}
	return pool, nil
}

func (s *Service) ListPools(ctx context.Context, status string) ([]domain.Pool, error) {
	pools, err := s.poolRepo.ListPools(ctx, status)
	if err != nil {
		zap.L().Error("failed to list pools", zap.Error(err))
		return nil, err
	}
	return pools, nil
}

func (s *Service) ListMembers(ctx context.Context, poolID string) ([]domain.Membership, error) {
	members, err := s.membershipRepo.ListMembers(ctx, poolID)
	if err != nil {
		zap.L().Error("failed to list members", zap.Error(err))
		return nil, err
	}
	return members, nil
}

// Activate starts the round once the pre-game countdown has elapsed. The
// waiting→active flip is conditional, so with several engine instances only
// one of them starts the game clock.
func (s *Service) Activate(ctx context.Context, poolID string) error {
	endsAt := time.Now().Add(s.gameDuration)
	started, err := s.poolRepo.MarkActive(ctx, poolID, endsAt)
	if err != nil {
		return err
	}
	if !started {
		return nil
	}

	zap.L().Info("round started", zap.String("pool_id", poolID))
	s.publisher.Publish(ctx, realtime.Event{
		Type:   realtime.EventRoundStarted,
		PoolID: poolID,
		Data:   map[string]any{"ends_at": endsAt},
	})
	return nil
}

// Settle ends the round: draw the winning number, flip the pool to completed
// (terminal, exactly once), split the pot evenly among members whose locked
// pick matches, and credit each prize through the ledger. With no winners the
// pot stays with the house.
func (s *Service) Settle(ctx context.Context, poolID string) error {
	pool, err := s.poolRepo.GetPool(ctx, poolID)
	if err != nil {
		return err
	}
	if pool == nil {
		return ErrPoolNotFound
	}

	winningNumber := s.draw(pool.RangeMin, pool.RangeMax)
	completed, err := s.poolRepo.MarkCompleted(ctx, poolID, winningNumber)
	if err != nil {
		return err
	}
	if !completed {
		return nil
	}

	members, err := s.membershipRepo.ListMembers(ctx, poolID)
	if err != nil {
		return err
	}

	var winners []domain.Membership
	for _, m := range members {
		if m.Locked && m.SelectedNumber != nil && *m.SelectedNumber == winningNumber {
			winners = append(winners, m)
		}
	}

	if len(winners) > 0 {
		pot := pool.EntryFee * float64(len(members))
		prize := pot / float64(len(winners))
		for _, winner := range winners {
			if err := s.creditPrize(ctx, winner.UserID, prize, poolID); err != nil {
				zap.L().Error("failed to credit prize",
					zap.String("pool_id", poolID),
					zap.Int("user_id", winner.UserID),
					zap.Error(err),
				)
			}
		}
	}

	winnerIDs := make(map[int]struct{}, len(winners))
	for _, w := range winners {
		winnerIDs[w.UserID] = struct{}{}
	}
	for _, m := range members {
		_, won := winnerIDs[m.UserID]
		if err := s.profileRepo.IncrementStats(ctx, m.UserID, won); err != nil {
			zap.L().Error("failed to update profile stats", zap.Int("user_id", m.UserID), zap.Error(err))
		}
	}

	zap.L().Info("round settled",
		zap.String("pool_id", poolID),
		zap.Int("winning_number", winningNumber),
		zap.Int("winners", len(winners)),
	)
	s.publisher.Publish(ctx, realtime.Event{
		Type:   realtime.EventRoundSettled,
		PoolID: poolID,
		Data:   map[string]any{"winning_number": winningNumber, "winners": len(winners)},
	})
	return nil
}

func (s *Service) creditPrize(ctx context.Context, userID int, prize float64, poolID string) error {
	txn := &domain.Transaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Amount:    prize,
		Kind:      domain.TxnKindPrize,
		Status:    domain.TxnStatusPending,
		Memo:      fmt.Sprintf("prize for pool %s", poolID),
		CreatedAt: time.Now(),
	}
	if _, err := s.transactionRepo.Create(ctx, txn); err != nil {
		return err
	}
	if _, err := s.balanceRepo.AdjustBalance(ctx, userID, prize); err != nil {
		if stErr := s.transactionRepo.UpdateStatus(ctx, txn.ID, domain.TxnStatusFailed); stErr != nil {
			zap.L().Error("can't mark prize transaction failed", zap.Error(stErr))
		}
		return err
	}
	return s.transactionRepo.UpdateStatus(ctx, txn.ID, domain.TxnStatusCompleted)
}
