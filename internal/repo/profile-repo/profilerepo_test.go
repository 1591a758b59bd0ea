package profilerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/pickwin/numpool/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetProfile(t *testing.T) {
	repo, mock := NewMock(t)

	query := `SELECT user_id, username, games_played, games_won FROM profiles WHERE user_id = $1`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Profile
	}{
		{
			name: "Existing profile is returned",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"user_id", "username", "games_played", "games_won"}).
					AddRow(1, "alice", 4, 1)
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(1).WillReturnRows(rows)
			},
			result: &domain.Profile{UserID: 1, Username: "alice", GamesPlayed: 4, GamesWon: 1},
		},
		{
			name: "Missing profile returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(1).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Query failure returns error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			profile, err := repo.GetProfile(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, profile)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_IncrementStats(t *testing.T) {
	repo, mock := NewMock(t)

	query := `UPDATE profiles SET games_played = games_played + 1, games_won = games_won + CASE WHEN $2 THEN 1 ELSE 0 END WHERE user_id = $1`

	tests := []struct {
		name string
		won  bool
	}{
		{name: "Winner gains a played and a won game", won: true},
		{name: "Loser gains a played game only", won: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(1, tt.won).
				WillReturnResult(pgxmock.NewResult("UPDATE", 1))

			err := repo.IncrementStats(context.Background(), 1, tt.won)
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
