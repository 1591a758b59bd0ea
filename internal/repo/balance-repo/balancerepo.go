package balancerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/pickwin/numpool/internal/domain"
	"github.com/pickwin/numpool/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, current_balance
        FROM balances
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (user_id, current_balance)
        VALUES ($1, 0)
        RETURNING id, user_id, current_balance
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.CurrentBalance)
	if err != nil {
		zap.L().Error("failed to create user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// AdjustBalance applies a signed delta in a single statement so concurrent
// adjustments never lose updates. Returns nil when the delta would take the
// balance below zero.
func (r *Repository) AdjustBalance(ctx context.Context, userID int, delta float64) (*domain.Balance, error) {
	var updated domain.Balance
	query := `
        UPDATE balances
        SET current_balance = current_balance + $1
        WHERE user_id = $2 AND current_balance + $1 >= 0
        RETURNING id, user_id, current_balance
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, delta, userID)
		err := row.Scan(&updated.ID, &updated.UserID, &updated.CurrentBalance)
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				zap.L().Error("failed to adjust user balance", zap.Error(err))
			}
			return err
		}
		return nil
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
