package service

import (
	"github.com/pickwin/numpool/internal/config"
	"github.com/pickwin/numpool/internal/handlers/balance"
	"github.com/pickwin/numpool/internal/handlers/pools"
	"github.com/pickwin/numpool/internal/repo"
	balanceservice "github.com/pickwin/numpool/internal/service/balanceservice"
	membershipservice "github.com/pickwin/numpool/internal/service/membershipservice"
	poolservice "github.com/pickwin/numpool/internal/service/poolservice"
)

type Services struct {
	PoolService       pools.PoolService
	MembershipService pools.MembershipService
	BalanceService    balance.Service

	// Pool exposes the lifecycle operations the phase engine drives.
	Pool *poolservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, publisher membershipservice.Publisher) *Services {
	poolService := poolservice.New(
		repo.PoolRepo, repo.MembershipRepo, repo.BalanceRepo, repo.TransactionRepo, repo.ProfileRepo,
		publisher, cfg.PreGameDuration(), cfg.GameDuration(),
	)
	membershipService := membershipservice.New(
		repo.PoolRepo, repo.MembershipRepo, repo.BalanceRepo, repo.TransactionRepo, repo.ProfileRepo,
		publisher,
	)
	balanceService := balanceservice.New(repo.BalanceRepo, repo.TransactionRepo)

	return &Services{
		PoolService:       poolService,
		MembershipService: membershipService,
		BalanceService:    balanceService,
		Pool:              poolService,
	}
}
