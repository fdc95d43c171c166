package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "office-attendance/internal/auth/errors"
	"office-attendance/internal/employee"
	"office-attendance/internal/rbac"
	"office-attendance/internal/shared/apperror"
	"office-attendance/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TokenIssuer signs a session token for a subject.
type TokenIssuer interface {
	Issue(sub contextutil.Subject) (string, time.Time, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	AdminLogin(ctx context.Context, username, password string) (AuthResponse, error)
	EmployeeLogin(ctx context.Context, email string) (AuthResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	tokens       TokenIssuer
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo employee.Repository, tokens TokenIssuer, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, employeeRepo: employeeRepo, tokens: tokens, logger: l}
}

func (s *service) AdminLogin(ctx context.Context, username, password string) (AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		log.Warn("admin login missing credentials")
		return AuthResponse{}, autherrors.ErrMissingCredentials
	}

	admin, err := s.repo.FindAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("admin login unknown username", zap.String("username", username))
			return AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		log.Error("admin login lookup failed", zap.Error(err))
		return AuthResponse{}, apperror.Storage(err)
	}
	if admin.Password != password {
		log.Warn("admin login wrong password", zap.String("username", username))
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	return s.issue(log, contextutil.Subject{ID: admin.ID, Role: rbac.RoleAdmin, Name: admin.Username})
}

func (s *service) EmployeeLogin(ctx context.Context, email string) (AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	email = strings.TrimSpace(email)
	if email == "" {
		log.Warn("employee login missing email")
		return AuthResponse{}, autherrors.ErrMissingEmail
	}

	empl, err := s.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("employee login unknown email", zap.String("email", email))
			return AuthResponse{}, autherrors.ErrEmployeeNotFound
		}
		log.Error("employee login lookup failed", zap.Error(err))
		return AuthResponse{}, apperror.Storage(err)
	}

	return s.issue(log, contextutil.Subject{ID: empl.ID, Role: rbac.RoleEmployee, Name: empl.Name})
}

func (s *service) issue(log *zap.Logger, sub contextutil.Subject) (AuthResponse, error) {
	raw, expiresAt, err := s.tokens.Issue(sub)
	if err != nil {
		log.Error("issue session token failed", zap.Error(err))
		return AuthResponse{}, apperror.Wrap(err, autherrors.ErrTokenGenerationFailed.Code,
			autherrors.ErrTokenGenerationFailed.Message, autherrors.ErrTokenGenerationFailed.HTTPStatus)
	}

	log.Info("login succeeded", zap.Uint("subject_id", sub.ID), zap.String("role", sub.Role))
	return AuthResponse{
		AccessToken: raw,
		ExpiresAt:   expiresAt,
		SubjectID:   sub.ID,
		Role:        sub.Role,
		Name:        sub.Name,
	}, nil
}
