package autherrors

import (
	"net/http"

	"office-attendance/internal/shared/apperror"
)

var (
	ErrMissingCredentials = apperror.New(
		apperror.CodeInvalidInput,
		"Username and password are required",
		http.StatusBadRequest,
	)
	ErrMissingEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Email is required",
		http.StatusBadRequest,
	)
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid username or password",
		http.StatusUnauthorized,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or employee not found",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to create session",
		http.StatusInternalServerError,
	)
)
