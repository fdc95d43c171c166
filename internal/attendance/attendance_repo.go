package attendance

import (
	"context"

	"gorm.io/gorm"
)

// HistoryFilter narrows a history query. Empty fields match everything.
type HistoryFilter struct {
	Year  string
	Month string
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeID uint, date string) (*Attendance, error)
	FindHistory(ctx context.Context, employeeID uint, filter HistoryFilter) ([]Attendance, error)
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID uint, date string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date).
		First(&a).Error
	return &a, err
}

// FindHistory slices the stored text date, which SQLite and PostgreSQL both
// support through SUBSTR.
func (r *repository) FindHistory(ctx context.Context, employeeID uint, filter HistoryFilter) ([]Attendance, error) {
	q := r.db.WithContext(ctx).Where("employee_id = ?", employeeID)
	if filter.Year != "" {
		q = q.Where("SUBSTR(date, 1, 4) = ?", filter.Year)
	}
	if filter.Month != "" {
		q = q.Where("SUBSTR(date, 6, 2) = ?", filter.Month)
	}

	var rows []Attendance
	err := q.Order("date DESC").Order("time DESC").Find(&rows).Error
	return rows, err
}
