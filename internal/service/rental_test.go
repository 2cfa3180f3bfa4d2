package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository"
	"rentwheels-backend/internal/service"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRentalService_QuoteCost(t *testing.T) {
	ctx := context.Background()

	t.Run("DaysTimesRate", func(t *testing.T) {
		mockVehicleRepo := new(MockVehicleRepo)
		svc := service.NewRentalService(new(MockRentalRepo), mockVehicleRepo, new(MockAuditRepo))

		mockVehicleRepo.On("GetByID", ctx, int32(3)).Return(&domain.Vehicle{ID: 3, DailyRateCents: 5000}, nil).Once()

		cost, err := svc.QuoteCost(ctx, 3, date("2026-03-01"), date("2026-03-04"))
		assert.NoError(t, err)
		assert.Equal(t, int64(15000), cost)
	})

	t.Run("UnknownVehicleQuotesZero", func(t *testing.T) {
		mockVehicleRepo := new(MockVehicleRepo)
		svc := service.NewRentalService(new(MockRentalRepo), mockVehicleRepo, new(MockAuditRepo))

		mockVehicleRepo.On("GetByID", ctx, int32(99)).Return(nil, sql.ErrNoRows).Once()

		cost, err := svc.QuoteCost(ctx, 99, date("2026-03-01"), date("2026-03-04"))
		assert.NoError(t, err)
		assert.Zero(t, cost)
	})
}

func TestRentalService_Create(t *testing.T) {
	ctx := context.Background()
	from, to := date("2026-03-01"), date("2026-03-04")

	t.Run("Success", func(t *testing.T) {
		mockRentalRepo := new(MockRentalRepo)
		mockAuditRepo := new(MockAuditRepo)
		svc := service.NewRentalService(mockRentalRepo, new(MockVehicleRepo), mockAuditRepo)

		created := &domain.Rental{
			ID: 11, UserID: 5, VehicleID: 3,
			RentalDate: from, ReturnDate: to,
			TotalCents: 15000,
			Status:     domain.RentalStatusPending,
		}
		mockRentalRepo.On("CreateRental", ctx, int32(5), int32(3), from, to).Return(created, nil).Once()
		mockAuditRepo.On("Insert", ctx, domain.AuditRentalCreated, mock.Anything, mock.Anything).Return(nil).Once()

		rt, err := svc.Create(ctx, 5, 3, from, to)
		assert.NoError(t, err)
		assert.Equal(t, int32(11), rt.ID)
		assert.Equal(t, domain.RentalStatusPending, rt.Status)
		mockAuditRepo.AssertExpectations(t)
	})

	t.Run("InvalidPeriod", func(t *testing.T) {
		mockRentalRepo := new(MockRentalRepo)
		mockAuditRepo := new(MockAuditRepo)
		svc := service.NewRentalService(mockRentalRepo, new(MockVehicleRepo), mockAuditRepo)

		mockRentalRepo.On("CreateRental", ctx, int32(5), int32(3), to, from).Return(nil, repository.ErrInvalidPeriod).Once()

		_, err := svc.Create(ctx, 5, 3, to, from)
		assert.ErrorIs(t, err, repository.ErrInvalidPeriod)
		mockAuditRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRentalService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRentalRepo := new(MockRentalRepo)
		mockAuditRepo := new(MockAuditRepo)
		svc := service.NewRentalService(mockRentalRepo, new(MockVehicleRepo), mockAuditRepo)

		approver := int32(1)
		approved := &domain.Rental{ID: 11, Status: domain.RentalStatusApproved, ApprovedBy: &approver}
		mockRentalRepo.On("ApproveRental", ctx, int32(11), int32(1)).Return(approved, nil).Once()
		mockAuditRepo.On("Insert", ctx, domain.AuditRentalApproved, mock.Anything, mock.Anything).Return(nil).Once()

		rt, err := svc.Approve(ctx, 11, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusApproved, rt.Status)
	})

	t.Run("NotPending", func(t *testing.T) {
		mockRentalRepo := new(MockRentalRepo)
		svc := service.NewRentalService(mockRentalRepo, new(MockVehicleRepo), new(MockAuditRepo))

		mockRentalRepo.On("ApproveRental", ctx, int32(11), int32(1)).Return(nil, repository.ErrRentalNotPending).Once()

		_, err := svc.Approve(ctx, 11, 1)
		assert.ErrorIs(t, err, repository.ErrRentalNotPending)
	})
}

func TestRentalService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mockRentalRepo := new(MockRentalRepo)
		svc := service.NewRentalService(mockRentalRepo, new(MockVehicleRepo), new(MockAuditRepo))

		mockRentalRepo.On("GetByID", ctx, int32(11)).
			Return(&domain.Rental{ID: 11, UserID: 5}, nil).Once()

		rt, err := svc.Get(ctx, 11)
		assert.NoError(t, err)
		assert.Equal(t, int32(11), rt.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRentalRepo := new(MockRentalRepo)
		svc := service.NewRentalService(mockRentalRepo, new(MockVehicleRepo), new(MockAuditRepo))

		mockRentalRepo.On("GetByID", ctx, int32(99)).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.Get(ctx, 99)
		assert.ErrorIs(t, err, service.ErrRentalNotFound)
	})
}

func TestRentalService_Lists(t *testing.T) {
	ctx := context.Background()
	mockRentalRepo := new(MockRentalRepo)
	svc := service.NewRentalService(mockRentalRepo, new(MockVehicleRepo), new(MockAuditRepo))

	mine := []domain.Rental{{ID: 1, UserID: 5}}
	pending := []domain.Rental{{ID: 2, Status: domain.RentalStatusPending}}
	mockRentalRepo.On("ListByUser", ctx, int32(5)).Return(mine, nil).Once()
	mockRentalRepo.On("ListPending", ctx).Return(pending, nil).Once()

	got, err := svc.ListForUser(ctx, 5)
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.ListPending(ctx)
	assert.NoError(t, err)
	assert.Equal(t, domain.RentalStatusPending, got[0].Status)
}
