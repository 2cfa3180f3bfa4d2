package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/security"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListActive(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Credit(ctx context.Context, id int32, cents int64) (int64, error) {
	args := m.Called(ctx, id, cents)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockUserRepo) Debit(ctx context.Context, id int32, cents int64) (int64, error) {
	args := m.Called(ctx, id, cents)
	return args.Get(0).(int64), args.Error(1)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Vehicle, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockVehicleRepo) UpdateDailyRate(ctx context.Context, id int32, rateCents int64) error {
	args := m.Called(ctx, id, rateCents)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListPending(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) CreateRental(ctx context.Context, userID, vehicleID int32, rentalDate, returnDate time.Time) (*domain.Rental, error) {
	args := m.Called(ctx, userID, vehicleID, rentalDate, returnDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ApproveRental(ctx context.Context, rentalID, approverID int32) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID, approverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) MarkOverdue(ctx context.Context, now time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ExpireStalePending(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockWalletRepo
type MockWalletRepo struct {
	mock.Mock
}

func (m *MockWalletRepo) CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockWalletRepo) ListByUser(ctx context.Context, userID int32) ([]domain.WalletTransaction, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.WalletTransaction), args.Error(1)
}
func (m *MockWalletRepo) TotalCommissionCents(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuditRepo
type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) Insert(ctx context.Context, eventType, message string, userID *int32) error {
	args := m.Called(ctx, eventType, message, userID)
	return args.Error(0)
}
func (m *MockAuditRepo) ListRecent(ctx context.Context, limit int32) ([]domain.AuditEvent, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.AuditEvent), args.Error(1)
}

// MockStatsRepo
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) Collect(ctx context.Context) (*domain.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) IssueSession(user *domain.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateSession(token string) (*security.SessionClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.SessionClaims), args.Error(1)
}
