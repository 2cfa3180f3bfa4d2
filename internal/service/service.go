package service

import (
	"context"
	"time"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/security"
)

type AuthService interface {
	// Login verifies credentials and returns the user with a session token.
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	// ValidateSession checks the token issued at login; an expired or
	// tampered token surfaces as security.ErrExpiredToken / ErrInvalidToken.
	ValidateSession(token string) (*security.SessionClaims, error)
	Register(ctx context.Context, username, password, fullName, email, phone string) (*domain.User, error)
	Logout(ctx context.Context, user *domain.User)
}

type VehicleService interface {
	ListAvailable(ctx context.Context) ([]domain.Vehicle, error)
	Get(ctx context.Context, id int32) (*domain.Vehicle, error)
	ListOwned(ctx context.Context, ownerID int32) ([]domain.Vehicle, error)
	AddCompanyVehicle(ctx context.Context, v *domain.Vehicle) error
	AddUserVehicle(ctx context.Context, ownerID int32, v *domain.Vehicle) error
	// UpdateDailyRate enforces ownership when ownerID is a real user;
	// admins pass domain.CompanyOwnerID to bypass the check.
	UpdateDailyRate(ctx context.Context, ownerID, vehicleID int32, rateCents int64) error
	// UpdateStatus moves a vehicle between AVAILABLE, RENTED and MAINTENANCE.
	UpdateStatus(ctx context.Context, vehicleID int32, status domain.VehicleStatus) error
}

type RentalService interface {
	// QuoteCost returns days x daily rate, or zero for an unknown vehicle.
	QuoteCost(ctx context.Context, vehicleID int32, rentalDate, returnDate time.Time) (int64, error)
	Get(ctx context.Context, rentalID int32) (*domain.Rental, error)
	Create(ctx context.Context, userID, vehicleID int32, rentalDate, returnDate time.Time) (*domain.Rental, error)
	Approve(ctx context.Context, rentalID, approverID int32) (*domain.Rental, error)
	ListForUser(ctx context.Context, userID int32) ([]domain.Rental, error)
	ListPending(ctx context.Context) ([]domain.Rental, error)
}

type PaymentService interface {
	AddToWallet(ctx context.Context, userID int32, amountCents int64) (int64, error)
	ProcessPayment(ctx context.Context, userID int32, amountCents int64, description string) (int64, error)
	Balance(ctx context.Context, userID int32) (int64, error)
	ListTransactions(ctx context.Context, userID int32) ([]domain.WalletTransaction, error)
}

type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	Stats(ctx context.Context) (*domain.Stats, error)
	RecentAuditEvents(ctx context.Context, limit int32) ([]domain.AuditEvent, error)
}
