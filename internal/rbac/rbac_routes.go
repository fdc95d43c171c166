package rbac

import (
	"office-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, service Service) {
	group := r.Group("/rbac")
	group.Use(authMW)
	{
		group.GET("/permissions",
			middleware.RBACAuthorize(service, "session", "read"),
			handler.MyPermissions,
		)
	}
}
