package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/service"
)

func TestVehicleService_AddCompanyVehicle(t *testing.T) {
	ctx := context.Background()
	mockVehicleRepo := new(MockVehicleRepo)
	mockAuditRepo := new(MockAuditRepo)
	svc := service.NewVehicleService(mockVehicleRepo, mockAuditRepo)

	mockVehicleRepo.On("Create", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool {
		return v.OwnerID == domain.CompanyOwnerID && !v.UserListed && v.Status == domain.VehicleStatusAvailable
	})).Return(nil).Once()
	mockAuditRepo.On("Insert", ctx, domain.AuditVehicleAdded, mock.Anything, mock.Anything).Return(nil).Once()

	err := svc.AddCompanyVehicle(ctx, &domain.Vehicle{RegistrationNo: "KA-01-1234", Make: "Toyota", Model: "Corolla"})
	assert.NoError(t, err)
	mockVehicleRepo.AssertExpectations(t)
}

func TestVehicleService_AddUserVehicle(t *testing.T) {
	ctx := context.Background()
	mockVehicleRepo := new(MockVehicleRepo)
	mockAuditRepo := new(MockAuditRepo)
	svc := service.NewVehicleService(mockVehicleRepo, mockAuditRepo)

	mockVehicleRepo.On("Create", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool {
		return v.OwnerID == 5 && v.UserListed && v.Status == domain.VehicleStatusAvailable
	})).Return(nil).Once()
	mockAuditRepo.On("Insert", ctx, domain.AuditVehicleAdded, mock.Anything, mock.Anything).Return(nil).Once()

	err := svc.AddUserVehicle(ctx, 5, &domain.Vehicle{RegistrationNo: "KA-02-9999", Make: "Honda", Model: "City"})
	assert.NoError(t, err)
	mockVehicleRepo.AssertExpectations(t)
}

func TestVehicleService_UpdateDailyRate(t *testing.T) {
	ctx := context.Background()

	t.Run("OwnerCanUpdate", func(t *testing.T) {
		mockVehicleRepo := new(MockVehicleRepo)
		mockAuditRepo := new(MockAuditRepo)
		svc := service.NewVehicleService(mockVehicleRepo, mockAuditRepo)

		mockVehicleRepo.On("GetByID", ctx, int32(3)).Return(&domain.Vehicle{ID: 3, OwnerID: 5, UserListed: true}, nil).Once()
		mockVehicleRepo.On("UpdateDailyRate", ctx, int32(3), int64(6000)).Return(nil).Once()
		mockAuditRepo.On("Insert", ctx, domain.AuditVehicleRate, mock.Anything, mock.Anything).Return(nil).Once()

		err := svc.UpdateDailyRate(ctx, 5, 3, 6000)
		assert.NoError(t, err)
		mockVehicleRepo.AssertExpectations(t)
	})

	t.Run("NonOwnerRefused", func(t *testing.T) {
		mockVehicleRepo := new(MockVehicleRepo)
		svc := service.NewVehicleService(mockVehicleRepo, new(MockAuditRepo))

		mockVehicleRepo.On("GetByID", ctx, int32(3)).Return(&domain.Vehicle{ID: 3, OwnerID: 5}, nil).Once()

		err := svc.UpdateDailyRate(ctx, 6, 3, 6000)
		assert.ErrorIs(t, err, service.ErrNotVehicleOwner)
		mockVehicleRepo.AssertNotCalled(t, "UpdateDailyRate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("AdminBypassesOwnershipCheck", func(t *testing.T) {
		mockVehicleRepo := new(MockVehicleRepo)
		mockAuditRepo := new(MockAuditRepo)
		svc := service.NewVehicleService(mockVehicleRepo, mockAuditRepo)

		mockVehicleRepo.On("UpdateDailyRate", ctx, int32(3), int64(7000)).Return(nil).Once()
		mockAuditRepo.On("Insert", ctx, domain.AuditVehicleRate, mock.Anything, mock.Anything).Return(nil).Once()

		err := svc.UpdateDailyRate(ctx, domain.CompanyOwnerID, 3, 7000)
		assert.NoError(t, err)
		mockVehicleRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestVehicleService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockVehicleRepo := new(MockVehicleRepo)
		mockAuditRepo := new(MockAuditRepo)
		svc := service.NewVehicleService(mockVehicleRepo, mockAuditRepo)

		mockVehicleRepo.On("UpdateStatus", ctx, int32(3), domain.VehicleStatusMaintenance).Return(nil).Once()
		mockAuditRepo.On("Insert", ctx, domain.AuditVehicleStatus, mock.Anything, mock.Anything).Return(nil).Once()

		err := svc.UpdateStatus(ctx, 3, domain.VehicleStatusMaintenance)
		assert.NoError(t, err)
		mockVehicleRepo.AssertExpectations(t)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		mockVehicleRepo := new(MockVehicleRepo)
		svc := service.NewVehicleService(mockVehicleRepo, new(MockAuditRepo))

		err := svc.UpdateStatus(ctx, 3, domain.VehicleStatus("SCRAPPED"))
		assert.ErrorIs(t, err, service.ErrUnknownVehicleStatus)
		mockVehicleRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestVehicleService_ListAvailable(t *testing.T) {
	ctx := context.Background()
	mockVehicleRepo := new(MockVehicleRepo)
	svc := service.NewVehicleService(mockVehicleRepo, new(MockAuditRepo))

	vehicles := []domain.Vehicle{{ID: 1, Status: domain.VehicleStatusAvailable}}
	mockVehicleRepo.On("ListAvailable", ctx).Return(vehicles, nil).Once()

	got, err := svc.ListAvailable(ctx)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}
