package transactionrepo

import (
	"context"

	"github.com/pickwin/numpool/internal/domain"
	"github.com/pickwin/numpool/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (id, user_id, amount, kind, status, memo, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
    `
	_, err := r.db.Exec(ctx, query, txn.ID, txn.UserID, txn.Amount, txn.Kind, txn.Status, txn.Memo, txn.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

// UpdateStatus finalizes a pending transaction. Already-terminal rows are
// left untouched.
func (r *Repository) UpdateStatus(ctx context.Context, transactionID string, status string) error {
	query := `
        UPDATE transactions
        SET status = $1, updated_at = now()
        WHERE id = $2 AND status = 'pending'
    `
	_, err := r.db.Exec(ctx, query, status, transactionID)
	if err != nil {
		zap.L().Error("can't update transaction status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, amount, kind, status, memo, created_at, updated_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(&txn.ID, &txn.UserID, &txn.Amount, &txn.Kind, &txn.Status, &txn.Memo, &txn.CreatedAt, &txn.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, txn)
	}

	return transactions, nil
}
