package membershipservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pickwin/numpool/internal/domain"
	"github.com/pickwin/numpool/internal/realtime"
	"github.com/pickwin/numpool/pkg/saga"
)

type PoolRepo interface {
	GetPool(ctx context.Context, poolID string) (*domain.Pool, error)
	IncrementPlayers(ctx context.Context, poolID string) (bool, error)
	DecrementPlayers(ctx context.Context, poolID string) error
}

type MembershipRepo interface {
	GetMembership(ctx context.Context, poolID string, userID int) (*domain.Membership, error)
	Insert(ctx context.Context, m *domain.Membership) error
	Delete(ctx context.Context, poolID string, userID int) error
	UpdateSnapshot(ctx context.Context, m *domain.Membership) error
}

type BalanceRepo interface {
	AdjustBalance(ctx context.Context, userID int, delta float64) (*domain.Balance, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, transactionID string, status string) error
}

type ProfileRepo interface {
	GetProfile(ctx context.Context, userID int) (*domain.Profile, error)
}

type Publisher interface {
	Publish(ctx context.Context, event realtime.Event)
}

// RefundRate is the share of the entry fee returned on a pre-game leave; the
// remaining 10% is forfeited.
const RefundRate = 0.9

var (
	ErrPoolNotFound      = errors.New("pool not found")
	ErrPoolFull          = errors.New("pool is full")
	ErrPoolCompleted     = errors.New("pool already completed")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrProfileNotFound   = errors.New("player profile not found")
	ErrNotAMember        = errors.New("player is not a member of the pool")
	ErrNumberOutOfRange  = errors.New("number out of range")
	ErrSelectionClosed   = errors.New("selection window closed")
)

type Service struct {
	poolRepo        PoolRepo
	membershipRepo  MembershipRepo
	balanceRepo     BalanceRepo
	transactionRepo TransactionRepo
	profileRepo     ProfileRepo
	publisher       Publisher

	mu       sync.Mutex
	inflight map[string]struct{}
}

func New(poolRepo PoolRepo, membershipRepo MembershipRepo, balanceRepo BalanceRepo, transactionRepo TransactionRepo, profileRepo ProfileRepo, publisher Publisher) *Service {
	return &Service{
		poolRepo:        poolRepo,
		membershipRepo:  membershipRepo,
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
		profileRepo:     profileRepo,
		publisher:       publisher,
		inflight:        make(map[string]struct{}),
	}
}

func inflightKey(op, poolID string, userID int) string {
	return fmt.Sprintf("%s:%s:%d", op, poolID, userID)
}

func (s *Service) tryAcquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inflight[key]; ok {
		return false
	}
	s.inflight[key] = struct{}{}
	return true
}

func (s *Service) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, key)
}

// Join seats the player in the pool: debit the entry fee, insert the
// membership row, take a seat on the occupancy counter. The debit and the
// insert are separate store calls, so partial failures are unwound by
// compensation. A second join for the same (pool, player) while one is in
// flight, or when a membership row already exists, is a silent no-op.
func (s *Service) Join(ctx context.Context, poolID string, userID int) error {
	key := inflightKey("join", poolID, userID)
	if !s.tryAcquire(key) {
		return nil
	}
	defer s.release(key)

	existing, err := s.membershipRepo.GetMembership(ctx, poolID, userID)
	if err != nil {
		return err
	}
	if existing != nil {
		zap.L().Info("player already in pool", zap.String("pool_id", poolID), zap.Int("user_id", userID))
		return nil
	}

	pool, err := s.poolRepo.GetPool(ctx, poolID)
	if err != nil {
		return err
	}
	if pool == nil {
		return ErrPoolNotFound
	}
	if pool.Status == domain.PoolStatusCompleted {
		return ErrPoolCompleted
	}
	if pool.PlayersCount >= pool.Capacity {
		return ErrPoolFull
	}

	profile, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}

	txn := &domain.Transaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Amount:    -pool.EntryFee,
		Kind:      domain.TxnKindGameEntry,
		Status:    domain.TxnStatusPending,
		Memo:      fmt.Sprintf("entry fee for pool %s", poolID),
		CreatedAt: time.Now(),
	}
	if _, err := s.transactionRepo.Create(ctx, txn); err != nil {
		zap.L().Error("can't create entry transaction", zap.Error(err))
		return err
	}

	membership := &domain.Membership{
		PoolID:      poolID,
		UserID:      userID,
		Username:    profile.Username,
		GamesPlayed: profile.GamesPlayed,
		GamesWon:    profile.GamesWon,
		JoinedAt:    time.Now(),
	}

	err = saga.New().
		AddStep(saga.Step{
			Name: "debit entry fee",
			Run: func(ctx context.Context) error {
				balance, err := s.balanceRepo.AdjustBalance(ctx, userID, -pool.EntryFee)
				if err != nil {
					return err
				}
				if balance == nil {
					return ErrInsufficientFunds
				}
				return nil
			},
			Compensate: func(ctx context.Context) error {
				_, err := s.balanceRepo.AdjustBalance(ctx, userID, pool.EntryFee)
				return err
			},
		}).
		AddStep(saga.Step{
			Name: "insert membership",
			Run: func(ctx context.Context) error {
				return s.membershipRepo.Insert(ctx, membership)
			},
			Compensate: func(ctx context.Context) error {
				return s.membershipRepo.Delete(ctx, poolID, userID)
			},
		}).
		AddStep(saga.Step{
			Name: "take seat",
			Run: func(ctx context.Context) error {
				// Conditional increment: the pre-check above can lose a race
				// against another joiner, this one cannot.
				seated, err := s.poolRepo.IncrementPlayers(ctx, poolID)
				if err != nil {
					return err
				}
				if !seated {
					return ErrPoolFull
				}
				return nil
			},
		}).
		Execute(ctx)
	if err != nil {
		if stErr := s.transactionRepo.UpdateStatus(ctx, txn.ID, domain.TxnStatusFailed); stErr != nil {
			zap.L().Error("can't mark entry transaction failed", zap.Error(stErr))
		}
		return err
	}

	if err := s.transactionRepo.UpdateStatus(ctx, txn.ID, domain.TxnStatusCompleted); err != nil {
		zap.L().Error("can't mark entry transaction completed", zap.Error(err))
	}

	s.publisher.Publish(ctx, realtime.Event{
		Type:   realtime.EventMemberJoined,
		PoolID: poolID,
		UserID: userID,
		Data:   map[string]any{"username": profile.Username},
	})
	return nil
}

// Leave vacates the player's seat. A pre-game leave refunds 90% of the entry
// fee; once the round has started the fee is forfeited. Leaving a pool the
// player never joined is a no-op.
func (s *Service) Leave(ctx context.Context, poolID string, userID int) error {
	key := inflightKey("leave", poolID, userID)
	if !s.tryAcquire(key) {
		return nil
	}
	defer s.release(key)

	membership, err := s.membershipRepo.GetMembership(ctx, poolID, userID)
	if err != nil {
		return err
	}
	if membership == nil {
		return nil
	}

	pool, err := s.poolRepo.GetPool(ctx, poolID)
	if err != nil {
		return err
	}
	if pool == nil {
		return ErrPoolNotFound
	}

	if pool.Status == domain.PoolStatusWaiting {
		refund := pool.EntryFee * RefundRate
		txn := &domain.Transaction{
			ID:        uuid.NewString(),
			UserID:    userID,
			Amount:    refund,
			Kind:      domain.TxnKindRefund,
			Status:    domain.TxnStatusPending,
			Memo:      fmt.Sprintf("pre-game refund for pool %s", poolID),
			CreatedAt: time.Now(),
		}
		if _, err := s.transactionRepo.Create(ctx, txn); err != nil {
			zap.L().Error("can't create refund transaction", zap.Error(err))
			return err
		}
		if _, err := s.balanceRepo.AdjustBalance(ctx, userID, refund); err != nil {
			if stErr := s.transactionRepo.UpdateStatus(ctx, txn.ID, domain.TxnStatusFailed); stErr != nil {
				zap.L().Error("can't mark refund transaction failed", zap.Error(stErr))
			}
			return err
		}
		if err := s.transactionRepo.UpdateStatus(ctx, txn.ID, domain.TxnStatusCompleted); err != nil {
			zap.L().Error("can't mark refund transaction completed", zap.Error(err))
		}
	}

	if err := s.membershipRepo.Delete(ctx, poolID, userID); err != nil {
		return err
	}
	if err := s.poolRepo.DecrementPlayers(ctx, poolID); err != nil {
		return err
	}

	s.publisher.Publish(ctx, realtime.Event{
		Type:   realtime.EventMemberLeft,
		PoolID: poolID,
		UserID: userID,
	})
	return nil
}

// LockNumber finalizes the player's pick for the running round. Locked is
// terminal: once set, repeat calls return without touching the selection.
func (s *Service) LockNumber(ctx context.Context, poolID string, userID int, number int) error {
	pool, err := s.poolRepo.GetPool(ctx, poolID)
	if err != nil {
		return err
	}
	if pool == nil {
		return ErrPoolNotFound
	}
	if pool.Status != domain.PoolStatusActive {
		return ErrSelectionClosed
	}
	if number < pool.RangeMin || number > pool.RangeMax {
		return ErrNumberOutOfRange
	}

	membership, err := s.membershipRepo.GetMembership(ctx, poolID, userID)
	if err != nil {
		return err
	}
	if membership == nil {
		return ErrNotAMember
	}
	if membership.Locked {
		zap.L().Info("selection already locked", zap.String("pool_id", poolID), zap.Int("user_id", userID))
		return nil
	}

	membership.SelectedNumber = &number
	membership.Locked = true
	if err := s.membershipRepo.UpdateSnapshot(ctx, membership); err != nil {
		return err
	}

	s.publisher.Publish(ctx, realtime.Event{
		Type:   realtime.EventNumberLocked,
		PoolID: poolID,
		UserID: userID,
	})
	return nil
}
