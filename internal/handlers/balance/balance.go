package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pickwin/numpool/internal/domain"
	"github.com/pickwin/numpool/internal/dto"
	balanceservice "github.com/pickwin/numpool/internal/service/balanceservice"
	"github.com/pickwin/numpool/pkg/auth"
	"github.com/pickwin/numpool/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	Deposit(ctx context.Context, userID int, amount float64) (*domain.Balance, error)
	Withdraw(ctx context.Context, userID int, amount float64) (*domain.Balance, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current wallet balance
//	@Description	Retrieve the current wallet balance for the authenticated player.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current: balance.CurrentBalance,
	})
}

// Deposit godoc
//
//	@Summary		Deposit funds
//	@Description	Credit the wallet by the provided amount.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BalanceChangeRequestDTO	true	"Deposit payload"
//	@Success		200		{object}	dto.BalanceResponseDTO		"Updated balance"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		422		{object}	utils.Response				"Invalid amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/balance/deposit [post]
func (h *BalanceHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.BalanceChangeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	balance, err := h.balanceService.Deposit(r.Context(), userID, req.Sum)
	if err != nil {
		if errors.Is(err, balanceservice.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current: balance.CurrentBalance,
	})
}

// Withdraw godoc
//
//	@Summary		Withdraw funds
//	@Description	Debit the wallet by the provided amount.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BalanceChangeRequestDTO	true	"Withdrawal payload"
//	@Success		200		{object}	dto.BalanceResponseDTO		"Updated balance"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		422		{object}	utils.Response				"Invalid amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/balance/withdraw [post]
func (h *BalanceHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.BalanceChangeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	balance, err := h.balanceService.Withdraw(r.Context(), userID, req.Sum)
	if err != nil {
		switch {
		case errors.Is(err, balanceservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, balanceservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current: balance.CurrentBalance,
	})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	Get the authenticated player's wallet transaction history, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/transactions [get]
func (h *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.balanceService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, txn := range transactions {
		response[i] = dto.TransactionResponseDTO{
			ID:        txn.ID,
			Amount:    txn.Amount,
			Kind:      txn.Kind,
			Status:    txn.Status,
			Memo:      txn.Memo,
			CreatedAt: txn.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
