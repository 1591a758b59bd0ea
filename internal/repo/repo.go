package repo

import (
	"github.com/pickwin/numpool/internal/engine"
	"github.com/pickwin/numpool/internal/pg"
	balancerepo "github.com/pickwin/numpool/internal/repo/balance-repo"
	membershiprepo "github.com/pickwin/numpool/internal/repo/membership-repo"
	poolrepo "github.com/pickwin/numpool/internal/repo/pool-repo"
	profilerepo "github.com/pickwin/numpool/internal/repo/profile-repo"
	transactionrepo "github.com/pickwin/numpool/internal/repo/transaction-repo"
	"github.com/pickwin/numpool/internal/service/balanceservice"
	"github.com/pickwin/numpool/internal/service/membershipservice"
	"github.com/pickwin/numpool/internal/service/poolservice"
)

// PoolRepo is the union of the pool store views the services and the phase
// engine consume.
type PoolRepo interface {
	membershipservice.PoolRepo
	poolservice.PoolRepo
	engine.PoolRepo
}

type MembershipRepo interface {
	membershipservice.MembershipRepo
	poolservice.MembershipRepo
}

type ProfileRepo interface {
	membershipservice.ProfileRepo
	poolservice.ProfileRepo
}

type Repositories struct {
	PoolRepo        PoolRepo
	MembershipRepo  MembershipRepo
	BalanceRepo     balanceservice.BalanceRepo
	TransactionRepo balanceservice.TransactionRepo
	ProfileRepo     ProfileRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		PoolRepo:        poolrepo.New(conn, txManager),
		MembershipRepo:  membershiprepo.New(conn),
		BalanceRepo:     balancerepo.New(conn, txManager),
		TransactionRepo: transactionrepo.New(conn),
		ProfileRepo:     profilerepo.New(conn),
	}
}
