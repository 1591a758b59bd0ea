package balance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pickwin/numpool/internal/domain"
	"github.com/pickwin/numpool/internal/dto"
	balanceservice "github.com/pickwin/numpool/internal/service/balanceservice"
	"github.com/pickwin/numpool/pkg/auth"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func asUser(req *http.Request, userID int) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Balance is returned",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(&domain.Balance{UserID: 1, CurrentBalance: 500.5}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Current: 500.5},
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := asUser(httptest.NewRequest(http.MethodGet, "/api/balance", nil), 1)
			resp := httptest.NewRecorder()

			handler.GetBalance(resp, req)

			assert.Equal(t, tt.expectedCode, resp.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Deposit credits the wallet",
			body: `{"sum":100}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, 100.0).Return(&domain.Balance{UserID: 1, CurrentBalance: 600.5}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{not json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid amount",
			body: `{"sum":-10}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, -10.0).Return(nil, balanceservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := asUser(httptest.NewRequest(http.MethodPost, "/api/balance/deposit", bytes.NewBufferString(tt.body)), 1)
			resp := httptest.NewRecorder()

			handler.Deposit(resp, req)

			assert.Equal(t, tt.expectedCode, resp.Code)
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Withdrawal debits the wallet",
			body: `{"sum":100}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 1, 100.0).Return(&domain.Balance{UserID: 1, CurrentBalance: 400.5}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient balance",
			body: `{"sum":10000}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 1, 10000.0).Return(nil, balanceservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Invalid amount",
			body: `{"sum":0}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 1, 0.0).Return(nil, balanceservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Invalid request body",
			body:         `{not json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := asUser(httptest.NewRequest(http.MethodPost, "/api/balance/withdraw", bytes.NewBufferString(tt.body)), 1)
			resp := httptest.NewRecorder()

			handler.Withdraw(resp, req)

			assert.Equal(t, tt.expectedCode, resp.Code)
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Transactions are returned",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1).Return([]domain.Transaction{
					{ID: "txn-1", UserID: 1, Amount: -20, Kind: domain.TxnKindGameEntry, Status: domain.TxnStatusCompleted},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No transactions",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1).Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := asUser(httptest.NewRequest(http.MethodGet, "/api/transactions", nil), 1)
			resp := httptest.NewRecorder()

			handler.GetTransactions(resp, req)

			assert.Equal(t, tt.expectedCode, resp.Code)
		})
	}
}
