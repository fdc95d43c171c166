package leave

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id uint) (*Leave, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	FindPendingWithEmployee(ctx context.Context) ([]PendingLeave, error)
	FindByEmployee(ctx context.Context, employeeID uint) ([]Leave, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status string) error {
	res := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindPendingWithEmployee inner-joins employees, so requests whose employee
// was deleted are not listed.
func (r *repository) FindPendingWithEmployee(ctx context.Context) ([]PendingLeave, error) {
	var rows []PendingLeave
	err := r.db.WithContext(ctx).
		Table("leaves AS l").
		Select("l.id, l.employee_id, e.name AS employee_name, l.date, l.reason, l.status").
		Joins("JOIN employees e ON l.employee_id = e.id").
		Where("l.status = ?", StatusPending).
		Order("l.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uint) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date DESC").
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}
