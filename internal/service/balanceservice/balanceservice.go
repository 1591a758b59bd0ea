package balanceservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pickwin/numpool/internal/domain"
)

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	AdjustBalance(ctx context.Context, userID int, delta float64) (*domain.Balance, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, transactionID string, status string) error
	GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type Service struct {
	balanceRepo     BalanceRepo
	transactionRepo TransactionRepo
}

func New(balanceRepo BalanceRepo, transactionRepo TransactionRepo) *Service {
	return &Service{
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
	}
}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

// GetBalance returns the player's wallet, creating an empty one on first
// access.
func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.GetUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return s.CreateBalance(ctx, userID)
	}
	return balance, nil
}

func (s *Service) CreateBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.CreateUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) Deposit(ctx context.Context, userID int, amount float64) (*domain.Balance, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := s.GetBalance(ctx, userID); err != nil {
		return nil, err
	}
	return s.apply(ctx, userID, amount, domain.TxnKindDeposit, fmt.Sprintf("deposit of %.2f", amount))
}

func (s *Service) Withdraw(ctx context.Context, userID int, amount float64) (*domain.Balance, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return s.apply(ctx, userID, -amount, domain.TxnKindWithdrawal, fmt.Sprintf("withdrawal of %.2f", amount))
}

// apply records a pending ledger entry, mutates the wallet by the signed
// amount, then finalizes the entry. This ordering is what makes a crash
// between the two calls reconcilable.
func (s *Service) apply(ctx context.Context, userID int, amount float64, kind, memo string) (*domain.Balance, error) {
	txn := &domain.Transaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Amount:    amount,
		Kind:      kind,
		Status:    domain.TxnStatusPending,
		Memo:      memo,
		CreatedAt: time.Now(),
	}
	if _, err := s.transactionRepo.Create(ctx, txn); err != nil {
		zap.L().Error("failed to create transaction record", zap.Error(err))
		return nil, err
	}

	balance, err := s.balanceRepo.AdjustBalance(ctx, userID, amount)
	if err != nil || balance == nil {
		if stErr := s.transactionRepo.UpdateStatus(ctx, txn.ID, domain.TxnStatusFailed); stErr != nil {
			zap.L().Error("failed to mark transaction failed", zap.Error(stErr))
		}
		if err != nil {
			zap.L().Error("failed to adjust user balance", zap.Error(err))
			return nil, err
		}
		return nil, ErrInsufficientBalance
	}

	if err := s.transactionRepo.UpdateStatus(ctx, txn.ID, domain.TxnStatusCompleted); err != nil {
		zap.L().Error("failed to mark transaction completed", zap.Error(err))
	}
	return balance, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
