package auth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	FindAdminByUsername(ctx context.Context, username string) (*Administrator, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAdminByUsername(ctx context.Context, username string) (*Administrator, error) {
	var admin Administrator
	err := r.db.WithContext(ctx).First(&admin, "username = ?", username).Error
	return &admin, err
}
