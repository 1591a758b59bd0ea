package balanceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pickwin/numpool/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockBalanceRepo, *MockTransactionRepo) {
	ctrl := gomock.NewController(t)
	balanceRepo := NewMockBalanceRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	service := New(balanceRepo, transactionRepo)
	defer ctrl.Finish()
	return service, balanceRepo, transactionRepo
}

func TestGetBalance(t *testing.T) {
	service, balanceRepo, _ := NewMock(t)

	tests := []struct {
		name            string
		userID          int
		prepareMock     func()
		expectedBalance *domain.Balance
		expectedError   error
	}{
		{
			name:   "Existing wallet is returned",
			userID: 1,
			prepareMock: func() {
				balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(&domain.Balance{UserID: 1, CurrentBalance: 100}, nil)
			},
			expectedBalance: &domain.Balance{UserID: 1, CurrentBalance: 100},
			expectedError:   nil,
		},
		{
			name:   "First access creates an empty wallet",
			userID: 2,
			prepareMock: func() {
				balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 2).Return(nil, nil)
				balanceRepo.EXPECT().CreateUserBalance(gomock.Any(), 2).Return(&domain.Balance{UserID: 2, CurrentBalance: 0}, nil)
			},
			expectedBalance: &domain.Balance{UserID: 2, CurrentBalance: 0},
			expectedError:   nil,
		},
		{
			name:   "Repo failure",
			userID: 1,
			prepareMock: func() {
				balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(nil, errors.New("some error"))
			},
			expectedBalance: nil,
			expectedError:   errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			balance, err := service.GetBalance(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedBalance, balance)
		})
	}
}

func TestDeposit(t *testing.T) {
	service, balanceRepo, transactionRepo := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		amount        float64
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Amount must be positive",
			userID:        1,
			amount:        0,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Deposit credits the wallet through the ledger",
			userID: 1,
			amount: 50,
			prepareMock: func() {
				balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(&domain.Balance{UserID: 1, CurrentBalance: 100}, nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
					assert.Equal(t, 50.0, txn.Amount)
					assert.Equal(t, domain.TxnKindDeposit, txn.Kind)
					assert.Equal(t, domain.TxnStatusPending, txn.Status)
					return txn, nil
				})
				balanceRepo.EXPECT().AdjustBalance(gomock.Any(), 1, 50.0).Return(&domain.Balance{UserID: 1, CurrentBalance: 150}, nil)
				transactionRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.TxnStatusCompleted).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:   "Adjust failure marks the transaction failed",
			userID: 1,
			amount: 50,
			prepareMock: func() {
				balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Transaction{}, nil)
				balanceRepo.EXPECT().AdjustBalance(gomock.Any(), 1, 50.0).Return(nil, errors.New("db down"))
				transactionRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.TxnStatusFailed).Return(nil)
			},
			expectedError: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			balance, err := service.Deposit(context.Background(), tt.userID, tt.amount)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, balance)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, balance)
			}
		})
	}
}

func TestWithdraw(t *testing.T) {
	service, balanceRepo, transactionRepo := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		amount        float64
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Amount must be positive",
			userID:        1,
			amount:        -5,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Withdrawal debits the wallet",
			userID: 1,
			amount: 30,
			prepareMock: func() {
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
					assert.Equal(t, -30.0, txn.Amount)
					assert.Equal(t, domain.TxnKindWithdrawal, txn.Kind)
					return txn, nil
				})
				balanceRepo.EXPECT().AdjustBalance(gomock.Any(), 1, -30.0).Return(&domain.Balance{UserID: 1, CurrentBalance: 70}, nil)
				transactionRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.TxnStatusCompleted).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:   "Insufficient balance",
			userID: 1,
			amount: 500,
			prepareMock: func() {
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Transaction{}, nil)
				balanceRepo.EXPECT().AdjustBalance(gomock.Any(), 1, -500.0).Return(nil, nil)
				transactionRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.TxnStatusFailed).Return(nil)
			},
			expectedError: ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			balance, err := service.Withdraw(context.Background(), tt.userID, tt.amount)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, balance)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, balance)
			}
		})
	}
}

func TestGetTransactions(t *testing.T) {
	service, _, transactionRepo := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedCount int
		expectedError error
	}{
		{
			name:   "Transactions are returned",
			userID: 1,
			prepareMock: func() {
				transactionRepo.EXPECT().GetTransactionsByUserID(gomock.Any(), 1).Return([]domain.Transaction{
					{UserID: 1, Amount: 50, Kind: domain.TxnKindDeposit},
					{UserID: 1, Amount: -20, Kind: domain.TxnKindGameEntry},
				}, nil)
			},
			expectedCount: 2,
			expectedError: nil,
		},
		{
			name:   "Repo failure",
			userID: 1,
			prepareMock: func() {
				transactionRepo.EXPECT().GetTransactionsByUserID(gomock.Any(), 1).Return(nil, errors.New("some error"))
			},
			expectedCount: 0,
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			transactions, err := service.GetTransactions(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, transactions, tt.expectedCount)
		})
	}
}
