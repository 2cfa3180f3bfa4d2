package domain

import "time"

type TransactionType string

const (
	TransactionTypeRentalDebit     TransactionType = "RENTAL_DEBIT"
	TransactionTypeRentalRefund    TransactionType = "RENTAL_REFUND"
	TransactionTypeWalletTopup     TransactionType = "WALLET_TOPUP"
	TransactionTypeOwnerCredit     TransactionType = "OWNER_CREDIT"
	TransactionTypeAdminCommission TransactionType = "ADMIN_COMMISSION"
)

type WalletTransaction struct {
	ID              int32           `json:"id"`
	UserID          int32           `json:"user_id"`
	AmountCents     int64           `json:"amount_cents"` // positive for credit, negative for debit
	Type            TransactionType `json:"type"`
	RelatedRentalID *int32          `json:"related_rental_id,omitempty"`
	Reference       string          `json:"reference"`
	Description     string          `json:"description"`
	CreatedOn       time.Time       `json:"created_on"`
}
