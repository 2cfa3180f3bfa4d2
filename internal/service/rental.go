package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository"
)

var ErrRentalNotFound = errors.New("rental not found")

type rentalService struct {
	rentalRepo  repository.RentalRepository
	vehicleRepo repository.VehicleRepository
	auditRepo   repository.AuditRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, vehicleRepo repository.VehicleRepository, auditRepo repository.AuditRepository) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		vehicleRepo: vehicleRepo,
		auditRepo:   auditRepo,
	}
}

func (s *rentalService) QuoteCost(ctx context.Context, vehicleID int32, rentalDate, returnDate time.Time) (int64, error) {
	v, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	days := int64(returnDate.Sub(rentalDate).Hours() / 24)
	return days * v.DailyRateCents, nil
}

func (s *rentalService) Get(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRentalNotFound
		}
		return nil, err
	}
	return rt, nil
}

func (s *rentalService) Create(ctx context.Context, userID, vehicleID int32, rentalDate, returnDate time.Time) (*domain.Rental, error) {
	rt, err := s.rentalRepo.CreateRental(ctx, userID, vehicleID, rentalDate, returnDate)
	if err != nil {
		return nil, err
	}
	recordAudit(ctx, s.auditRepo, domain.AuditRentalCreated, fmt.Sprintf("User %d rented vehicle %d", userID, vehicleID), userID)
	return rt, nil
}

func (s *rentalService) Approve(ctx context.Context, rentalID, approverID int32) (*domain.Rental, error) {
	rt, err := s.rentalRepo.ApproveRental(ctx, rentalID, approverID)
	if err != nil {
		return nil, err
	}
	recordAudit(ctx, s.auditRepo, domain.AuditRentalApproved, fmt.Sprintf("Rental %d approved", rentalID), approverID)
	return rt, nil
}

func (s *rentalService) ListForUser(ctx context.Context, userID int32) ([]domain.Rental, error) {
	return s.rentalRepo.ListByUser(ctx, userID)
}

func (s *rentalService) ListPending(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.ListPending(ctx)
}
