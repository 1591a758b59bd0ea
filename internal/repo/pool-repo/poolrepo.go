package poolrepo

import (
	"context"
	"errors"
	"time"

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

const poolColumns = `id, game_type, entry_fee, capacity, players_count, status, range_min, range_max, starts_at, ends_at, winning_number, created_at`

func scanPool(row pgx.Row, pool *domain.Pool) error {
	return row.Scan(
		&pool.ID, &pool.GameType, &pool.EntryFee, &pool.Capacity, &pool.PlayersCount,
		&pool.Status, &pool.RangeMin, &pool.RangeMax, &pool.StartsAt, &pool.EndsAt,
		&pool.WinningNumber, &pool.CreatedAt,
	)
}

func (r *Repository) CreatePool(ctx context.Context, pool *domain.Pool) error {
	query := `
        INSERT INTO pools (id, game_type, entry_fee, capacity, players_count, status, range_min, range_max, starts_at, created_at)
        VALUES ($1, $2, $3, $4, 0, $5, $6, $7, $8, $9)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			pool.ID, pool.GameType, pool.EntryFee, pool.Capacity, pool.Status,
			pool.RangeMin, pool.RangeMax, pool.StartsAt, pool.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't create pool", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) GetPool(ctx context.Context, poolID string) (*domain.Pool, error) {
	query := `
        SELECT ` + poolColumns + `
        FROM pools
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, poolID)
	var pool domain.Pool
	err := scanPool(row, &pool)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find pool", zap.Error(err))
		return nil, err
	}
	return &pool, nil
}

func (r *Repository) ListPools(ctx context.Context, status string) ([]domain.Pool, error) {
	query := `
        SELECT ` + poolColumns + `
        FROM pools
        WHERE ($1 = '' OR status = $1)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("can't list pools", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var pools []domain.Pool
	for rows.Next() {
		var pool domain.Pool
		if err := scanPool(rows, &pool); err != nil {
			zap.L().Error("can't scan pool row", zap.Error(err))
			return nil, err
		}
		pools = append(pools, pool)
	}
	return pools, nil
}

// IncrementPlayers takes one seat if the pool still has room. Returns false
// when the pool is already at capacity.
func (r *Repository) IncrementPlayers(ctx context.Context, poolID string) (bool, error) {
	query := `
        UPDATE pools
        SET players_count = players_count + 1
        WHERE id = $1 AND players_count < capacity
    `
	tag, err := r.db.Exec(ctx, query, poolID)
	if err != nil {
		zap.L().Error("can't increment players count", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) DecrementPlayers(ctx context.Context, poolID string) error {
	query := `
        UPDATE pools
        SET players_count = GREATEST(players_count - 1, 0)
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, poolID)
	if err != nil {
		zap.L().Error("can't decrement players count", zap.Error(err))
		return err
	}
	return nil
}

// MarkActive flips a waiting pool to active. Returns false when the pool was
// not in waiting status, so concurrent engine instances start a round once.
func (r *Repository) MarkActive(ctx context.Context, poolID string, endsAt time.Time) (bool, error) {
	query := `
        UPDATE pools
        SET status = 'active', ends_at = $2
        WHERE id = $1 AND status = 'waiting'
    `
	tag, err := r.db.Exec(ctx, query, poolID, endsAt)
	if err != nil {
		zap.L().Error("can't mark pool active", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkCompleted flips an active pool to completed and reveals the drawn
// number. Completed is terminal.
func (r *Repository) MarkCompleted(ctx context.Context, poolID string, winningNumber int) (bool, error) {
	query := `
        UPDATE pools
        SET status = 'completed', winning_number = $2
        WHERE id = $1 AND status = 'active'
    `
	tag, err := r.db.Exec(ctx, query, poolID, winningNumber)
	if err != nil {
		zap.L().Error("can't mark pool completed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindDueForStart(ctx context.Context, now time.Time, limit uint32) ([]domain.Pool, error) {
	query := `
        SELECT ` + poolColumns + `
        FROM pools
        WHERE status = 'waiting' AND starts_at IS NOT NULL AND starts_at <= $1
        ORDER BY starts_at ASC
        LIMIT $2
    `
	return r.findDue(ctx, query, now, limit)
}

func (r *Repository) FindDueForCompletion(ctx context.Context, now time.Time, limit uint32) ([]domain.Pool, error) {
	query := `
        SELECT ` + poolColumns + `
        FROM pools
        WHERE status = 'active' AND ends_at IS NOT NULL AND ends_at <= $1
        ORDER BY ends_at ASC
        LIMIT $2
    `
	return r.findDue(ctx, query, now, limit)
}

func (r *Repository) findDue(ctx context.Context, query string, now time.Time, limit uint32) ([]domain.Pool, error) {
	rows, err := r.db.Query(ctx, query, now, int(limit))
	if err != nil {
		zap.L().Error("can't get pools due for transition", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var pools []domain.Pool
	for rows.Next() {
		var pool domain.Pool
		if err := scanPool(rows, &pool); err != nil {
			zap.L().Error("can't scan pool row", zap.Error(err))
			return nil, err
		}
		pools = append(pools, pool)
	}
	return pools, nil
}
