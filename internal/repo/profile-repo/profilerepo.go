package profilerepo

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

func (r *Repository) GetProfile(ctx context.Context, userID int) (*domain.Profile, error) {
	query := `
        SELECT user_id, username, games_played, games_won
        FROM profiles
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var profile domain.Profile
	err := row.Scan(&profile.UserID, &profile.Username, &profile.GamesPlayed, &profile.GamesWon)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find profile", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

func (r *Repository) IncrementStats(ctx context.Context, userID int, won bool) error {
	query := `
        UPDATE profiles
        SET games_played = games_played + 1,
            games_won = games_won + CASE WHEN $2 THEN 1 ELSE 0 END
        WHERE user_id = $1
    `
	_, err := r.db.Exec(ctx, query, userID, won)
	if err != nil {
		zap.L().Error("can't update profile stats", zap.Error(err))
		return err
	}
	return nil
}
