package service

import (
	"context"
	"errors"
	"fmt"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository"
)

var (
	ErrNotVehicleOwner      = errors.New("vehicle does not belong to this user")
	ErrUnknownVehicleStatus = errors.New("unknown vehicle status")
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	auditRepo   repository.AuditRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, auditRepo repository.AuditRepository) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		auditRepo:   auditRepo,
	}
}

func (s *vehicleService) ListAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListAvailable(ctx)
}

func (s *vehicleService) Get(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) ListOwned(ctx context.Context, ownerID int32) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListByOwner(ctx, ownerID)
}

func (s *vehicleService) AddCompanyVehicle(ctx context.Context, v *domain.Vehicle) error {
	v.OwnerID = domain.CompanyOwnerID
	v.UserListed = false
	return s.add(ctx, v)
}

func (s *vehicleService) AddUserVehicle(ctx context.Context, ownerID int32, v *domain.Vehicle) error {
	v.OwnerID = ownerID
	v.UserListed = true
	return s.add(ctx, v)
}

func (s *vehicleService) add(ctx context.Context, v *domain.Vehicle) error {
	v.Status = domain.VehicleStatusAvailable
	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return err
	}
	recordAudit(ctx, s.auditRepo, domain.AuditVehicleAdded, v.RegistrationNo+" added", v.OwnerID)
	return nil
}

func (s *vehicleService) UpdateDailyRate(ctx context.Context, ownerID, vehicleID int32, rateCents int64) error {
	if ownerID != domain.CompanyOwnerID {
		v, err := s.vehicleRepo.GetByID(ctx, vehicleID)
		if err != nil {
			return err
		}
		if v.OwnerID != ownerID {
			return ErrNotVehicleOwner
		}
	}

	if err := s.vehicleRepo.UpdateDailyRate(ctx, vehicleID, rateCents); err != nil {
		return err
	}
	recordAudit(ctx, s.auditRepo, domain.AuditVehicleRate, fmt.Sprintf("Vehicle %d rate -> %d", vehicleID, rateCents), ownerID)
	return nil
}

func (s *vehicleService) UpdateStatus(ctx context.Context, vehicleID int32, status domain.VehicleStatus) error {
	switch status {
	case domain.VehicleStatusAvailable, domain.VehicleStatusRented, domain.VehicleStatusMaintenance:
	default:
		return ErrUnknownVehicleStatus
	}

	if err := s.vehicleRepo.UpdateStatus(ctx, vehicleID, status); err != nil {
		return err
	}
	recordAudit(ctx, s.auditRepo, domain.AuditVehicleStatus, fmt.Sprintf("Vehicle %d status -> %s", vehicleID, status), 0)
	return nil
}
