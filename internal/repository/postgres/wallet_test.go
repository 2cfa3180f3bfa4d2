package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository/postgres"
)

func TestWalletRepository_CreateTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewWalletRepository(db)
	ctx := context.Background()

	tx := &domain.WalletTransaction{
		UserID:      5,
		AmountCents: 2500,
		Type:        domain.TransactionTypeWalletTopup,
		Reference:   "ref-1",
		Description: "Wallet top-up",
	}
	mock.ExpectQuery("INSERT INTO wallet_transactions").
		WithArgs(int32(5), int64(2500), "WALLET_TOPUP", tx.RelatedRentalID, "ref-1", "Wallet top-up", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))

	err = repo.CreateTransaction(ctx, tx)
	assert.NoError(t, err)
	assert.Equal(t, int32(21), tx.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewWalletRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "user_id", "amount_cents", "type", "related_rental_id", "reference", "description", "created_on"}).
		AddRow(2, 5, int64(-15000), "RENTAL_DEBIT", 11, "ref-2", "Rental payment for vehicle 3", time.Now()).
		AddRow(1, 5, int64(25000), "WALLET_TOPUP", nil, "ref-1", "Wallet top-up", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM wallet_transactions WHERE user_id").
		WithArgs(int32(5)).
		WillReturnRows(rows)

	txs, err := repo.ListByUser(ctx, 5)
	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Equal(t, domain.TransactionTypeRentalDebit, txs[0].Type)
	assert.Nil(t, txs[1].RelatedRentalID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepository_TotalCommissionCents(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewWalletRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount_cents\\), 0\\) FROM wallet_transactions").
		WithArgs("ADMIN_COMMISSION").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(4500)))

	total, err := repo.TotalCommissionCents(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(4500), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
