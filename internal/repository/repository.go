package repository

import (
	"context"
	"errors"
	"time"

	"rentwheels-backend/internal/domain"
)

// Business-rule failures surfaced by the persistence layer. Callers branch on
// these; anything else is a database error.
var (
	ErrInsufficientFunds   = errors.New("insufficient wallet balance")
	ErrVehicleNotAvailable = errors.New("vehicle is not available")
	ErrRentalNotPending    = errors.New("rental is not pending")
	ErrInvalidPeriod       = errors.New("return date must be after rental date")
)

// LookupKind names a get-or-create lookup table.
type LookupKind string

const (
	LookupMake  LookupKind = "make"
	LookupColor LookupKind = "color"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	ListActive(ctx context.Context) ([]domain.User, error)
	// Credit adds cents to the wallet. Debit subtracts only when the balance
	// covers the amount and returns ErrInsufficientFunds otherwise. Both
	// return the resulting balance.
	Credit(ctx context.Context, id int32, cents int64) (int64, error)
	Debit(ctx context.Context, id int32, cents int64) (int64, error)
}

type LookupRepository interface {
	// GetOrCreate returns the id for name in the given lookup table,
	// inserting it when absent. Concurrent callers converge on one row.
	GetOrCreate(ctx context.Context, kind LookupKind, name string) (int32, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	ListAvailable(ctx context.Context) ([]domain.Vehicle, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Vehicle, error)
	UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error
	UpdateDailyRate(ctx context.Context, id int32, rateCents int64) error
}

type RentalRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error)
	ListPending(ctx context.Context) ([]domain.Rental, error)

	// CreateRental atomically verifies the vehicle is available, debits the
	// renter's wallet for days x daily rate, and inserts a PENDING rental
	// with its debit transaction. Nothing is persisted on failure.
	CreateRental(ctx context.Context, userID, vehicleID int32, rentalDate, returnDate time.Time) (*domain.Rental, error)

	// ApproveRental atomically moves a PENDING rental to APPROVED, marks the
	// vehicle RENTED and records the owner/commission split.
	ApproveRental(ctx context.Context, rentalID, approverID int32) (*domain.Rental, error)

	// MarkOverdue flips APPROVED rentals whose return date has passed to
	// OVERDUE and releases their vehicles. Returns the rentals it touched.
	MarkOverdue(ctx context.Context, now time.Time) ([]domain.Rental, error)

	// ExpireStalePending cancels PENDING rentals created before cutoff,
	// refunds the renter's wallet and records the refund transaction.
	ExpireStalePending(ctx context.Context, cutoff time.Time) ([]domain.Rental, error)
}

type WalletRepository interface {
	CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) error
	ListByUser(ctx context.Context, userID int32) ([]domain.WalletTransaction, error)
	TotalCommissionCents(ctx context.Context) (int64, error)
}

type AuditRepository interface {
	Insert(ctx context.Context, eventType, message string, userID *int32) error
	ListRecent(ctx context.Context, limit int32) ([]domain.AuditEvent, error)
}

type StatsRepository interface {
	Collect(ctx context.Context) (*domain.Stats, error)
}
