package employee

import (
	"office-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authMW gin.HandlerFunc,
	rbacService middleware.RBACService,
	idempotency gin.HandlerFunc,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(authMW)
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitBySubject(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.List,
		)

		employees.GET("/:id",
			middleware.RateLimitBySubject(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetByID,
		)

		employees.POST("",
			middleware.RateLimitBySubject(1, 5),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			idempotency,
			handler.Create,
		)

		employees.DELETE("/:id",
			middleware.RateLimitBySubject(1, 5),
			middleware.RBACAuthorize(rbacService, "employee", "delete"),
			handler.Delete,
		)
	}
}
