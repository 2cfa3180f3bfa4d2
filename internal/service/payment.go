package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/logger"
	"rentwheels-backend/internal/repository"
)

var ErrInvalidAmount = errors.New("amount must be positive")

type paymentService struct {
	userRepo   repository.UserRepository
	walletRepo repository.WalletRepository
	auditRepo  repository.AuditRepository
}

func NewPaymentService(userRepo repository.UserRepository, walletRepo repository.WalletRepository, auditRepo repository.AuditRepository) PaymentService {
	return &paymentService{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		auditRepo:  auditRepo,
	}
}

// AddToWallet credits the stored balance and returns the new figure. The
// balance is mutated in the database first, so session state can only ever
// trail it, never lead it.
func (s *paymentService) AddToWallet(ctx context.Context, userID int32, amountCents int64) (int64, error) {
	if amountCents <= 0 {
		return 0, ErrInvalidAmount
	}

	balance, err := s.userRepo.Credit(ctx, userID, amountCents)
	if err != nil {
		return 0, fmt.Errorf("credit wallet: %w", err)
	}

	s.recordTransaction(ctx, userID, amountCents, domain.TransactionTypeWalletTopup, "Wallet top-up")
	recordAudit(ctx, s.auditRepo, domain.AuditWalletAdded, fmt.Sprintf("User %d added %d", userID, amountCents), userID)
	return balance, nil
}

// ProcessPayment debits the stored balance with a conditional update, so an
// insufficient balance refuses the payment without any compensating write.
func (s *paymentService) ProcessPayment(ctx context.Context, userID int32, amountCents int64, description string) (int64, error) {
	if amountCents <= 0 {
		return 0, ErrInvalidAmount
	}

	balance, err := s.userRepo.Debit(ctx, userID, amountCents)
	if err != nil {
		return 0, err
	}

	s.recordTransaction(ctx, userID, -amountCents, domain.TransactionTypeRentalDebit, description)
	recordAudit(ctx, s.auditRepo, domain.AuditPayment, fmt.Sprintf("User %d paid %d", userID, amountCents), userID)
	return balance, nil
}

func (s *paymentService) recordTransaction(ctx context.Context, userID int32, amountCents int64, txType domain.TransactionType, description string) {
	tx := &domain.WalletTransaction{
		UserID:      userID,
		AmountCents: amountCents,
		Type:        txType,
		Reference:   uuid.NewString(),
		Description: description,
	}
	if err := s.walletRepo.CreateTransaction(ctx, tx); err != nil {
		logger.Warn("Failed to record wallet transaction", "user_id", userID, "type", txType, "error", err)
	}
}

func (s *paymentService) Balance(ctx context.Context, userID int32) (int64, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.WalletBalanceCents, nil
}

func (s *paymentService) ListTransactions(ctx context.Context, userID int32) ([]domain.WalletTransaction, error) {
	return s.walletRepo.ListByUser(ctx, userID)
}
