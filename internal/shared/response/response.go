package response

import (
	"office-attendance/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

type Meta struct {
	Total int `json:"total"`
}

type ApiEnvelope struct {
	Ok    bool  `json:"ok"`
	Data  any   `json:"data,omitempty"`
	Meta  *Meta `json:"meta,omitempty"`
	Error any   `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *Meta) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
		Meta: meta,
	})
}

// List writes a collection together with its size.
func List[T any](c *gin.Context, status int, items []T) {
	if items == nil {
		items = []T{}
	}
	Success(c, status, items, &Meta{Total: len(items)})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// FromError writes err using the status and code carried by apperror.
func FromError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
