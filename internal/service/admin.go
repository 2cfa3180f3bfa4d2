package service

import (
	"context"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/repository"
)

type adminService struct {
	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
	auditRepo repository.AuditRepository
}

func NewAdminService(userRepo repository.UserRepository, statsRepo repository.StatsRepository, auditRepo repository.AuditRepository) AdminService {
	return &adminService{
		userRepo:  userRepo,
		statsRepo: statsRepo,
		auditRepo: auditRepo,
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListActive(ctx)
}

func (s *adminService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.statsRepo.Collect(ctx)
}

func (s *adminService) RecentAuditEvents(ctx context.Context, limit int32) ([]domain.AuditEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.auditRepo.ListRecent(ctx, limit)
}
