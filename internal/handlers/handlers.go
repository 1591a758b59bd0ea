package handlers

import (
	"net/http"

	_ "github.com/pickwin/numpool/docs"
	balancehandlers "github.com/pickwin/numpool/internal/handlers/balance"
	poolhandlers "github.com/pickwin/numpool/internal/handlers/pools"
	"github.com/pickwin/numpool/internal/realtime"
	"github.com/pickwin/numpool/internal/service"
	"github.com/pickwin/numpool/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type PoolHandler interface {
	ListPools(w http.ResponseWriter, r *http.Request)
	CreatePool(w http.ResponseWriter, r *http.Request)
	GetPool(w http.ResponseWriter, r *http.Request)
	GetMembers(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
	Leave(w http.ResponseWriter, r *http.Request)
	LockNumber(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	PoolHandler    PoolHandler
	BalanceHandler BalanceHandler
}

func New(s *service.Services, hub *realtime.Hub) *Handlers {
	return &Handlers{
		PoolHandler:    poolhandlers.New(s.PoolService, s.MembershipService, hub),
		BalanceHandler: balancehandlers.New(s.BalanceService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/pools", func(r chi.Router) {
				r.Get("/", h.PoolHandler.ListPools)
				r.Post("/", h.PoolHandler.CreatePool)
				r.Route("/{poolID}", func(r chi.Router) {
					r.Get("/", h.PoolHandler.GetPool)
					r.Get("/members", h.PoolHandler.GetMembers)
					r.Post("/join", h.PoolHandler.Join)
					r.Post("/leave", h.PoolHandler.Leave)
					r.Post("/lock", h.PoolHandler.LockNumber)
					r.Get("/ws", h.PoolHandler.Stream)
				})
			})
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Post("/deposit", h.BalanceHandler.Deposit)
				r.Post("/withdraw", h.BalanceHandler.Withdraw)
			})
			r.Get("/transactions", h.BalanceHandler.GetTransactions)
		})
	})

	return r
}
