package membershiprepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func TestRepository_GetMembership(t *testing.T) {
	repo, mock := NewMock(t)

	query := `SELECT pool_id, user_id, username, games_played, games_won, selected_number, locked, joined_at FROM memberships WHERE pool_id = $1 AND user_id = $2`
	joinedAt := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Existing membership is returned",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"pool_id", "user_id", "username", "games_played", "games_won", "selected_number", "locked", "joined_at"}).
					AddRow("pool-1", 1, "alice", 4, 1, nil, false, joinedAt)
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("pool-1", 1).WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Missing membership returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("pool-1", 1).WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name: "Query failure returns error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("pool-1", 1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			m, err := repo.GetMembership(context.Background(), "pool-1", 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				assert.NotNil(t, m)
				assert.Equal(t, "alice", m.Username)
			} else {
				assert.Nil(t, m)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListMembers(t *testing.T) {
	repo, mock := NewMock(t)

	query := `SELECT pool_id, user_id, username, games_played, games_won, selected_number, locked, joined_at FROM memberships WHERE pool_id = $1 ORDER BY joined_at ASC`
	joinedAt := time.Now()
	pick := 42

	rows := pgxmock.NewRows([]string{"pool_id", "user_id", "username", "games_played", "games_won", "selected_number", "locked", "joined_at"}).
		AddRow("pool-1", 1, "alice", 4, 1, &pick, true, joinedAt).
		AddRow("pool-1", 2, "bob", 0, 0, nil, false, joinedAt)
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("pool-1").WillReturnRows(rows)

	members, err := repo.ListMembers(context.Background(), "pool-1")
	assert.NoError(t, err)
	assert.Len(t, members, 2)
	assert.True(t, members[0].Locked)
	assert.Equal(t, 42, *members[0].SelectedNumber)
	assert.Nil(t, members[1].SelectedNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)

	query := `INSERT INTO memberships (pool_id, user_id, username, games_played, games_won, selected_number, locked, joined_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	m := &domain.Membership{PoolID: "pool-1", UserID: 1, Username: "alice", GamesPlayed: 4, GamesWon: 1, JoinedAt: time.Now()}

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(m.PoolID, m.UserID, m.Username, m.GamesPlayed, m.GamesWon, m.SelectedNumber, m.Locked, m.JoinedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Insert(context.Background(), m)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	query := `DELETE FROM memberships WHERE pool_id = $1 AND user_id = $2`

	mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("pool-1", 1).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), "pool-1", 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateSnapshot(t *testing.T) {
	repo, mock := NewMock(t)

	query := `UPDATE memberships SET username = $3, games_played = $4, games_won = $5, selected_number = $6, locked = $7 WHERE pool_id = $1 AND user_id = $2`
	pick := 42
	m := &domain.Membership{PoolID: "pool-1", UserID: 1, Username: "alice", GamesPlayed: 4, GamesWon: 1, SelectedNumber: &pick, Locked: true}

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(m.PoolID, m.UserID, m.Username, m.GamesPlayed, m.GamesWon, m.SelectedNumber, m.Locked).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateSnapshot(context.Background(), m)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
