package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pickwin/numpool/internal/pg"
	balancerepo "github.com/pickwin/numpool/internal/repo/balance-repo"
	membershiprepo "github.com/pickwin/numpool/internal/repo/membership-repo"
	poolrepo "github.com/pickwin/numpool/internal/repo/pool-repo"
	profilerepo "github.com/pickwin/numpool/internal/repo/profile-repo"
	transactionrepo "github.com/pickwin/numpool/internal/repo/transaction-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.PoolRepo)
	assert.NotNil(t, repo.MembershipRepo)
	assert.NotNil(t, repo.BalanceRepo)
	assert.NotNil(t, repo.TransactionRepo)
	assert.NotNil(t, repo.ProfileRepo)

	assert.IsType(t, &poolrepo.Repository{}, repo.PoolRepo)
	assert.IsType(t, &membershiprepo.Repository{}, repo.MembershipRepo)
	assert.IsType(t, &balancerepo.Repository{}, repo.BalanceRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &profilerepo.Repository{}, repo.ProfileRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
