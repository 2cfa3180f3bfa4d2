package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository"
)

type walletRepository struct {
	db *sql.DB
}

func NewWalletRepository(db *sql.DB) repository.WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) error {
	query := `INSERT INTO wallet_transactions (user_id, amount_cents, type, related_rental_id, reference, description, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	tx.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, tx.UserID, tx.AmountCents, tx.Type, tx.RelatedRentalID, tx.Reference, tx.Description, tx.CreatedOn).Scan(&tx.ID)
}

func (r *walletRepository) ListByUser(ctx context.Context, userID int32) ([]domain.WalletTransaction, error) {
	query := `SELECT id, user_id, amount_cents, type, related_rental_id, reference, COALESCE(description, ''), created_on
	          FROM wallet_transactions WHERE user_id = $1 ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.WalletTransaction
	for rows.Next() {
		var tx domain.WalletTransaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.AmountCents, &tx.Type, &tx.RelatedRentalID, &tx.Reference, &tx.Description, &tx.CreatedOn); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func (r *walletRepository) TotalCommissionCents(ctx context.Context) (int64, error) {
	var total int64
	query := `SELECT COALESCE(SUM(amount_cents), 0) FROM wallet_transactions WHERE type = $1`
	err := r.db.QueryRowContext(ctx, query, domain.TransactionTypeAdminCommission).Scan(&total)
	return total, err
}
