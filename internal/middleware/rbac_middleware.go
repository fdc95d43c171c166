package middleware

import (
	"office-attendance/internal/shared/apperror"
	"office-attendance/internal/shared/contextutil"
	"office-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by anything that can answer a role/resource/action
// question.
type RBACService interface {
	Enforce(role, resource, action string) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, ok := contextutil.GetSubject(c.Request.Context())
		if !ok {
			response.FromError(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(sub.Role, resource, action)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		if !allowed {
			httpErr := apperror.ToHTTP(apperror.ErrForbidden)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, gin.H{
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
