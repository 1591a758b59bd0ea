package poolrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/pickwin/numpool/internal/domain"
	"github.com/pickwin/numpool/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func poolRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "game_type", "entry_fee", "capacity", "players_count",
		"status", "range_min", "range_max", "starts_at", "ends_at",
		"winning_number", "created_at",
	})
}

func TestRepository_CreatePool(t *testing.T) {
	repo, mock, tx := NewMock(t)

	now := time.Now()
	startsAt := now.Add(20 * time.Second)
	pool := &domain.Pool{
		ID:        "pool-1",
		GameType:  "pick",
		EntryFee:  20,
		Capacity:  5,
		Status:    domain.PoolStatusWaiting,
		RangeMin:  1,
		RangeMax:  100,
		StartsAt:  &startsAt,
		CreatedAt: now,
	}

	query := `INSERT INTO pools (id, game_type, entry_fee, capacity, players_count, status, range_min, range_max, starts_at, created_at) VALUES ($1, $2, $3, $4, 0, $5, $6, $7, $8, $9)`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Pool row is inserted",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(query)).
						WithArgs(pool.ID, pool.GameType, pool.EntryFee, pool.Capacity, pool.Status, pool.RangeMin, pool.RangeMax, pool.StartsAt, pool.CreatedAt).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Insert failure returns error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(query)).
						WithArgs(pool.ID, pool.GameType, pool.EntryFee, pool.Capacity, pool.Status, pool.RangeMin, pool.RangeMax, pool.StartsAt, pool.CreatedAt).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.CreatePool(context.Background(), pool)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetPool(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `SELECT id, game_type, entry_fee, capacity, players_count, status, range_min, range_max, starts_at, ends_at, winning_number, created_at FROM pools WHERE id = $1`
	now := time.Now()

	tests := []struct {
		name      string
		poolID    string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:   "Existing pool is returned",
			poolID: "pool-1",
			mockSetup: func() {
				rows := poolRows().AddRow("pool-1", "pick", 20.0, 5, 2, "waiting", 1, 100, &now, nil, nil, now)
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("pool-1").WillReturnRows(rows)
			},
			found: true,
		},
		{
			name:   "Missing pool returns nil",
			poolID: "missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("missing").WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name:   "Query failure returns error",
			poolID: "pool-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("pool-1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			pool, err := repo.GetPool(context.Background(), tt.poolID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				assert.NotNil(t, pool)
				assert.Equal(t, tt.poolID, pool.ID)
			} else {
				assert.Nil(t, pool)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_IncrementPlayers(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `UPDATE pools SET players_count = players_count + 1 WHERE id = $1 AND players_count < capacity`

	tests := []struct {
		name      string
		mockSetup func()
		seated    bool
		expectErr bool
	}{
		{
			name: "Seat is taken while room remains",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("pool-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			seated: true,
		},
		{
			name: "Full pool leaves the counter untouched",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("pool-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			seated: false,
		},
		{
			name: "Exec failure returns error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("pool-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			seated, err := repo.IncrementPlayers(context.Background(), "pool-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.seated, seated)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_DecrementPlayers(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `UPDATE pools SET players_count = GREATEST(players_count - 1, 0) WHERE id = $1`

	mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("pool-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.DecrementPlayers(context.Background(), "pool-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkActive(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `UPDATE pools SET status = 'active', ends_at = $2 WHERE id = $1 AND status = 'waiting'`
	endsAt := time.Now().Add(120 * time.Second)

	tests := []struct {
		name      string
		mockSetup func()
		started   bool
	}{
		{
			name: "Waiting pool flips to active",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("pool-1", endsAt).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			started: true,
		},
		{
			name: "Already active pool is not flipped again",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("pool-1", endsAt).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			started: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			started, err := repo.MarkActive(context.Background(), "pool-1", endsAt)
			assert.NoError(t, err)
			assert.Equal(t, tt.started, started)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkCompleted(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `UPDATE pools SET status = 'completed', winning_number = $2 WHERE id = $1 AND status = 'active'`

	tests := []struct {
		name      string
		mockSetup func()
		completed bool
	}{
		{
			name: "Active pool completes once",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("pool-1", 42).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			completed: true,
		},
		{
			name: "Completed pool stays completed",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("pool-1", 42).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			completed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			completed, err := repo.MarkCompleted(context.Background(), "pool-1", 42)
			assert.NoError(t, err)
			assert.Equal(t, tt.completed, completed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindDueForStart(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `SELECT id, game_type, entry_fee, capacity, players_count, status, range_min, range_max, starts_at, ends_at, winning_number, created_at FROM pools WHERE status = 'waiting' AND starts_at IS NOT NULL AND starts_at <= $1 ORDER BY starts_at ASC LIMIT $2`
	now := time.Now()
	startsAt := now.Add(-time.Second)

	rows := poolRows().
		AddRow("pool-1", "pick", 20.0, 5, 3, "waiting", 1, 100, &startsAt, nil, nil, now).
		AddRow("pool-2", "pick", 10.0, 3, 1, "waiting", 1, 50, &startsAt, nil, nil, now)
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(now, 1000).WillReturnRows(rows)

	pools, err := repo.FindDueForStart(context.Background(), now, 1000)
	assert.NoError(t, err)
	assert.Len(t, pools, 2)
	assert.Equal(t, "pool-1", pools[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindDueForCompletion(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := `SELECT id, game_type, entry_fee, capacity, players_count, status, range_min, range_max, starts_at, ends_at, winning_number, created_at FROM pools WHERE status = 'active' AND ends_at IS NOT NULL AND ends_at <= $1 ORDER BY ends_at ASC LIMIT $2`
	now := time.Now()
	endsAt := now.Add(-time.Second)

	rows := poolRows().
		AddRow("pool-3", "pick", 20.0, 5, 5, "active", 1, 100, &endsAt, &endsAt, nil, now)
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(now, 1000).WillReturnRows(rows)

	pools, err := repo.FindDueForCompletion(context.Background(), now, 1000)
	assert.NoError(t, err)
	assert.Len(t, pools, 1)
	assert.Equal(t, "pool-3", pools[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
