package pools

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pickwin/numpool/internal/domain"
	"github.com/pickwin/numpool/internal/dto"
	"github.com/pickwin/numpool/internal/realtime"
	membershipservice "github.com/pickwin/numpool/internal/service/membershipservice"
	poolservice "github.com/pickwin/numpool/internal/service/poolservice"
	"github.com/pickwin/numpool/pkg/auth"
	"github.com/pickwin/numpool/pkg/utils"
)

type PoolService interface {
	CreatePool(ctx context.Context, gameType string, entryFee float64, capacity, rangeMin, rangeMax int) (*domain.Pool, error)
	GetPool(ctx context.Context, poolID string) (*domain.Pool, error)
	ListPools(ctx context.Context, status string) ([]domain.Pool, error)
	ListMembers(ctx context.Context, poolID string) ([]domain.Membership, error)
}

type MembershipService interface {
	Join(ctx context.Context, poolID string, userID int) error
	Leave(ctx context.Context, poolID string, userID int) error
	LockNumber(ctx context.Context, poolID string, userID int, number int) error
}

type PoolHandler struct {
	poolService       PoolService
	membershipService MembershipService
	hub               *realtime.Hub
}

func New(poolService PoolService, membershipService MembershipService, hub *realtime.Hub) *PoolHandler {
	return &PoolHandler{
		poolService:       poolService,
		membershipService: membershipService,
		hub:               hub,
	}
}

func toPoolDTO(pool *domain.Pool) dto.PoolResponseDTO {
	return dto.PoolResponseDTO{
		ID:            pool.ID,
		GameType:      pool.GameType,
		EntryFee:      pool.EntryFee,
		Capacity:      pool.Capacity,
		PlayersCount:  pool.PlayersCount,
		Status:        pool.Status,
		RangeMin:      pool.RangeMin,
		RangeMax:      pool.RangeMax,
		StartsAt:      pool.StartsAt,
		EndsAt:        pool.EndsAt,
		WinningNumber: pool.WinningNumber,
	}
}

// ListPools godoc
//
//	@Summary		List pools
//	@Description	List pools, optionally filtered by lifecycle status.
//	@Tags			Pools
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string					false	"waiting | active | completed"
//	@Success		200		{array}		dto.PoolResponseDTO		"Pools"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/pools [get]
func (h *PoolHandler) ListPools(w http.ResponseWriter, r *http.Request) {
	pools, err := h.poolService.ListPools(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PoolResponseDTO, len(pools))
	for i, pool := range pools {
		pool := pool
		response[i] = toPoolDTO(&pool)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreatePool godoc
//
//	@Summary		Create a pool
//	@Description	Create a new pool in waiting status; the pre-game countdown starts immediately.
//	@Tags			Pools
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePoolRequestDTO	true	"Pool parameters"
//	@Success		201		{object}	dto.PoolResponseDTO			"Created pool"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		422		{object}	utils.Response				"Invalid pool parameters"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/pools [post]
func (h *PoolHandler) CreatePool(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePoolRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pool, err := h.poolService.CreatePool(r.Context(), req.GameType, req.EntryFee, req.Capacity, req.RangeMin, req.RangeMax)
	if err != nil {
		switch {
		case errors.Is(err, poolservice.ErrInvalidEntryFee),
			errors.Is(err, poolservice.ErrInvalidCapacity),
			errors.Is(err, poolservice.ErrInvalidRange):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPoolDTO(pool))
}

// GetPool godoc
//
//	@Summary		Get pool
//	@Description	Get a single pool with its current occupancy and phase.
//	@Tags			Pools
//	@Security		BearerAuth
//	@Produce		json
//	@Param			poolID	path		string				true	"Pool ID"
//	@Success		200		{object}	dto.PoolResponseDTO	"Pool"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		404		{object}	utils.Response		"Pool not found"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/pools/{poolID} [get]
func (h *PoolHandler) GetPool(w http.ResponseWriter, r *http.Request) {
	pool, err := h.poolService.GetPool(r.Context(), chi.URLParam(r, "poolID"))
	if err != nil {
		if errors.Is(err, poolservice.ErrPoolNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPoolDTO(pool))
}

// GetMembers godoc
//
//	@Summary		List pool members
//	@Description	List current members of a pool with their selection state.
//	@Tags			Pools
//	@Security		BearerAuth
//	@Produce		json
//	@Param			poolID	path		string					true	"Pool ID"
//	@Success		200		{array}		dto.MemberResponseDTO	"Members"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/pools/{poolID}/members [get]
func (h *PoolHandler) GetMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.poolService.ListMembers(r.Context(), chi.URLParam(r, "poolID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.MemberResponseDTO, len(members))
	for i, m := range members {
		response[i] = dto.MemberResponseDTO{
			UserID:         m.UserID,
			Username:       m.Username,
			GamesPlayed:    m.GamesPlayed,
			GamesWon:       m.GamesWon,
			SelectedNumber: m.SelectedNumber,
			Locked:         m.Locked,
			JoinedAt:       m.JoinedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Join godoc
//
//	@Summary		Join a pool
//	@Description	Take a seat in the pool, debiting the entry fee from the wallet. Joining a pool the player already occupies is a no-op.
//	@Tags			Pools
//	@Security		BearerAuth
//	@Produce		json
//	@Param			poolID	path		string			true	"Pool ID"
//	@Success		200		{string}	string			"Joined"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		404		{object}	utils.Response	"Pool or profile not found"
//	@Failure		409		{object}	utils.Response	"Pool is full"
//	@Failure		410		{object}	utils.Response	"Pool already completed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pools/{poolID}/join [post]
func (h *PoolHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	err := h.membershipService.Join(r.Context(), chi.URLParam(r, "poolID"), userID)
	if err != nil {
		switch {
		case errors.Is(err, membershipservice.ErrPoolNotFound),
			errors.Is(err, membershipservice.ErrProfileNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, membershipservice.ErrPoolFull):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, membershipservice.ErrPoolCompleted):
			utils.RespondWithError(w, http.StatusGone, err.Error())
		case errors.Is(err, membershipservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "joined")
}

// Leave godoc
//
//	@Summary		Leave a pool
//	@Description	Vacate the seat. Before the round starts 90% of the entry fee is refunded; afterwards it is forfeited. Leaving a pool the player is not in is a no-op.
//	@Tags			Pools
//	@Security		BearerAuth
//	@Produce		json
//	@Param			poolID	path		string			true	"Pool ID"
//	@Success		200		{string}	string			"Left"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Pool not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pools/{poolID}/leave [post]
func (h *PoolHandler) Leave(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	err := h.membershipService.Leave(r.Context(), chi.URLParam(r, "poolID"), userID)
	if err != nil {
		if errors.Is(err, membershipservice.ErrPoolNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "left")
}

// LockNumber godoc
//
//	@Summary		Lock a number
//	@Description	Finalize the number selection for the running round. Once locked the selection cannot change.
//	@Tags			Pools
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			poolID	path		string					true	"Pool ID"
//	@Param			request	body		dto.LockNumberRequestDTO	true	"Number to lock"
//	@Success		200		{string}	string					"Locked"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Not a member"
//	@Failure		404		{object}	utils.Response			"Pool not found"
//	@Failure		409		{object}	utils.Response			"Selection window closed"
//	@Failure		422		{object}	utils.Response			"Number out of range"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/pools/{poolID}/lock [post]
func (h *PoolHandler) LockNumber(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.LockNumberRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.membershipService.LockNumber(r.Context(), chi.URLParam(r, "poolID"), userID, req.Number)
	if err != nil {
		switch {
		case errors.Is(err, membershipservice.ErrPoolNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, membershipservice.ErrNotAMember):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, membershipservice.ErrSelectionClosed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, membershipservice.ErrNumberOutOfRange):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "locked")
}

// Stream subscribes the connection to the pool's event stream over websocket.
func (h *PoolHandler) Stream(w http.ResponseWriter, r *http.Request) {
	h.hub.ServeWS(w, r, chi.URLParam(r, "poolID"))
}
