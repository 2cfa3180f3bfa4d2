package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository"
	"rentwheels-backend/internal/service"
)

func TestPaymentService_AddToWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		mockWalletRepo := new(MockWalletRepo)
		mockAuditRepo := new(MockAuditRepo)
		svc := service.NewPaymentService(mockUserRepo, mockWalletRepo, mockAuditRepo)

		mockUserRepo.On("Credit", ctx, int32(5), int64(2500)).Return(int64(7500), nil).Once()
		mockWalletRepo.On("CreateTransaction", ctx, mock.MatchedBy(func(tx *domain.WalletTransaction) bool {
			return tx.UserID == 5 && tx.AmountCents == 2500 &&
				tx.Type == domain.TransactionTypeWalletTopup && tx.Reference != ""
		})).Return(nil).Once()
		mockAuditRepo.On("Insert", ctx, domain.AuditWalletAdded, mock.Anything, mock.Anything).Return(nil).Once()

		balance, err := svc.AddToWallet(ctx, 5, 2500)
		assert.NoError(t, err)
		assert.Equal(t, int64(7500), balance)

		mockUserRepo.AssertExpectations(t)
		mockWalletRepo.AssertExpectations(t)
	})

	t.Run("RejectsNonPositiveAmount", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		svc := service.NewPaymentService(mockUserRepo, new(MockWalletRepo), new(MockAuditRepo))

		_, err := svc.AddToWallet(ctx, 5, 0)
		assert.ErrorIs(t, err, service.ErrInvalidAmount)

		_, err = svc.AddToWallet(ctx, 5, -100)
		assert.ErrorIs(t, err, service.ErrInvalidAmount)

		mockUserRepo.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPaymentService_ProcessPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		mockWalletRepo := new(MockWalletRepo)
		mockAuditRepo := new(MockAuditRepo)
		svc := service.NewPaymentService(mockUserRepo, mockWalletRepo, mockAuditRepo)

		mockUserRepo.On("Debit", ctx, int32(5), int64(3000)).Return(int64(4500), nil).Once()
		mockWalletRepo.On("CreateTransaction", ctx, mock.MatchedBy(func(tx *domain.WalletTransaction) bool {
			return tx.AmountCents == -3000 && tx.Type == domain.TransactionTypeRentalDebit
		})).Return(nil).Once()
		mockAuditRepo.On("Insert", ctx, domain.AuditPayment, mock.Anything, mock.Anything).Return(nil).Once()

		balance, err := svc.ProcessPayment(ctx, 5, 3000, "Rental payment")
		assert.NoError(t, err)
		assert.Equal(t, int64(4500), balance)
		mockWalletRepo.AssertExpectations(t)
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		mockWalletRepo := new(MockWalletRepo)
		svc := service.NewPaymentService(mockUserRepo, mockWalletRepo, new(MockAuditRepo))

		mockUserRepo.On("Debit", ctx, int32(5), int64(999999)).Return(int64(0), repository.ErrInsufficientFunds).Once()

		_, err := svc.ProcessPayment(ctx, 5, 999999, "Rental payment")
		assert.ErrorIs(t, err, repository.ErrInsufficientFunds)

		// no transaction row when the debit is refused
		mockWalletRepo.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	})
}

func TestPaymentService_Balance(t *testing.T) {
	ctx := context.Background()
	mockUserRepo := new(MockUserRepo)
	svc := service.NewPaymentService(mockUserRepo, new(MockWalletRepo), new(MockAuditRepo))

	mockUserRepo.On("GetByID", ctx, int32(5)).Return(&domain.User{ID: 5, WalletBalanceCents: 12345}, nil).Once()

	balance, err := svc.Balance(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(12345), balance)
}

func TestPaymentService_ListTransactions(t *testing.T) {
	ctx := context.Background()
	mockWalletRepo := new(MockWalletRepo)
	svc := service.NewPaymentService(new(MockUserRepo), mockWalletRepo, new(MockAuditRepo))

	txs := []domain.WalletTransaction{{ID: 1, UserID: 5, AmountCents: 1000}}
	mockWalletRepo.On("ListByUser", ctx, int32(5)).Return(txs, nil).Once()

	got, err := svc.ListTransactions(ctx, 5)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1000), got[0].AmountCents)
}
