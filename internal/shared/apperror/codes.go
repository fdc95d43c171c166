package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidDate     = "INVALID_DATE"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeDuplicateEntry  = "DUPLICATE_ENTRY"
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeConflict        = "CONFLICT"

	// Server errors (5xx)
	CodeStorageError  = "STORAGE_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)
