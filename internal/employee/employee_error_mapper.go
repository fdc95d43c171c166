package employee

import (
	"errors"
	"strings"

	employeeerrors "office-attendance/internal/employee/errors"
	"office-attendance/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	if isEmailUniqueViolation(err) {
		return employeeerrors.ErrEmailAlreadyExists
	}

	return apperror.Storage(err)
}

func isEmailUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employee_email"
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique &&
			strings.Contains(liteErr.Error(), "employees.email")
	}

	errMsg := strings.ToLower(err.Error())
	return (strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_email")) ||
		strings.Contains(errMsg, "unique constraint failed: employees.email")
}

// mapValidationError picks one error for the whole form: a blank field wins
// over a malformed one, and fields are checked in form order.
func mapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return employeeerrors.ErrMissingRequiredFields
	}

	for _, fe := range errs {
		if fe.Tag() == "required" {
			return employeeerrors.ErrMissingRequiredFields
		}
	}

	switch errs[0].Field() {
	case "email":
		return employeeerrors.ErrInvalidEmail
	case "phone":
		return employeeerrors.ErrInvalidPhone
	case "gender":
		return employeeerrors.ErrInvalidGender
	case "role":
		return employeeerrors.ErrInvalidRole
	default:
		return employeeerrors.ErrMissingRequiredFields
	}
}
