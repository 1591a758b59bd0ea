package membershiprepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

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

func (r *Repository) GetMembership(ctx context.Context, poolID string, userID int) (*domain.Membership, error) {
	query := `
        SELECT pool_id, user_id, username, games_played, games_won, selected_number, locked, joined_at
        FROM memberships
        WHERE pool_id = $1 AND user_id = $2
    `
	row := r.db.QueryRow(ctx, query, poolID, userID)
	var m domain.Membership
	err := row.Scan(&m.PoolID, &m.UserID, &m.Username, &m.GamesPlayed, &m.GamesWon, &m.SelectedNumber, &m.Locked, &m.JoinedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find membership", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

func (r *Repository) ListMembers(ctx context.Context, poolID string) ([]domain.Membership, error) {
	query := `
        SELECT pool_id, user_id, username, games_played, games_won, selected_number, locked, joined_at
        FROM memberships
        WHERE pool_id = $1
        ORDER BY joined_at ASC
    `
	rows, err := r.db.Query(ctx, query, poolID)
	if err != nil {
		zap.L().Error("can't list members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var members []domain.Membership
	for rows.Next() {
		var m domain.Membership
		err := rows.Scan(&m.PoolID, &m.UserID, &m.Username, &m.GamesPlayed, &m.GamesWon, &m.SelectedNumber, &m.Locked, &m.JoinedAt)
		if err != nil {
			zap.L().Error("can't scan membership row", zap.Error(err))
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

func (r *Repository) Insert(ctx context.Context, m *domain.Membership) error {
	query := `
        INSERT INTO memberships (pool_id, user_id, username, games_played, games_won, selected_number, locked, joined_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query, m.PoolID, m.UserID, m.Username, m.GamesPlayed, m.GamesWon, m.SelectedNumber, m.Locked, m.JoinedAt)
	if err != nil {
		zap.L().Error("can't insert membership", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, poolID string, userID int) error {
	query := `
        DELETE FROM memberships
        WHERE pool_id = $1 AND user_id = $2
    `
	_, err := r.db.Exec(ctx, query, poolID, userID)
	if err != nil {
		zap.L().Error("can't delete membership", zap.Error(err))
		return err
	}
	return nil
}

// UpdateSnapshot writes the membership row back in full. The store offers no
// partial-field update guarantee for selection state.
func (r *Repository) UpdateSnapshot(ctx context.Context, m *domain.Membership) error {
	query := `
        UPDATE memberships
        SET username = $3, games_played = $4, games_won = $5, selected_number = $6, locked = $7
        WHERE pool_id = $1 AND user_id = $2
    `
	_, err := r.db.Exec(ctx, query, m.PoolID, m.UserID, m.Username, m.GamesPlayed, m.GamesWon, m.SelectedNumber, m.Locked)
	if err != nil {
		zap.L().Error("can't update membership snapshot", zap.Error(err))
		return err
	}
	return nil
}
