package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/logger"
	"rentwheels-backend/internal/repository"
	"rentwheels-backend/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrMissingFields      = errors.New("all fields are required")
)

type authService struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditRepository
	tokens    security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, auditRepo repository.AuditRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		tokens:    tokens,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Error("Failed to look up user", "username", username, "error", err)
		}
		recordAudit(ctx, s.auditRepo, domain.AuditLoginFailed, "Failed login: "+username, 0)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		recordAudit(ctx, s.auditRepo, domain.AuditLoginFailed, "Failed login: "+username, 0)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.IssueSession(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue session: %w", err)
	}

	recordAudit(ctx, s.auditRepo, domain.AuditUserLogin, user.Username+" logged in", user.ID)
	return user, token, nil
}

func (s *authService) ValidateSession(token string) (*security.SessionClaims, error) {
	return s.tokens.ValidateSession(token)
}

func (s *authService) Register(ctx context.Context, username, password, fullName, email, phone string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || strings.TrimSpace(fullName) == "" || strings.TrimSpace(email) == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     fullName,
		Email:        email,
		Phone:        phone,
		Role:         domain.RoleCustomer,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.auditRepo, domain.AuditUserRegistered, "New user: "+username, 0)
	return user, nil
}

func (s *authService) Logout(ctx context.Context, user *domain.User) {
	if user == nil {
		return
	}
	recordAudit(ctx, s.auditRepo, domain.AuditUserLogout, user.Username+" logged out", user.ID)
}
