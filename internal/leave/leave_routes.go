package leave

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
	leaves := r.Group("/leaves")
	leaves.Use(authMW)
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.POST("",
			middleware.RateLimitBySubject(0.5, 3),
			middleware.RBACAuthorize(rbacService, "leave", "create"),
			idempotency,
			handler.Submit,
		)

		leaves.GET("/me",
			middleware.RateLimitBySubject(3, 10),
			middleware.RBACAuthorize(rbacService, "leave", "read"),
			handler.MyHistory,
		)
	}

	admin := r.Group("/admin/leaves")
	admin.Use(authMW)
	admin.Use(middleware.ContextLogger(logger))
	{
		admin.POST("",
			middleware.RateLimitBySubject(1, 5),
			middleware.RBACAuthorize(rbacService, "leave", "manage"),
			idempotency,
			handler.AdminSubmit,
		)

		admin.GET("/pending",
			middleware.RateLimitBySubject(3, 10),
			middleware.RBACAuthorize(rbacService, "leave", "manage"),
			handler.Pending,
		)

		admin.PUT("/:id/approve",
			middleware.RateLimitBySubject(1, 5),
			middleware.RBACAuthorize(rbacService, "leave", "decide"),
			handler.Approve,
		)

		admin.PUT("/:id/reject",
			middleware.RateLimitBySubject(1, 5),
			middleware.RBACAuthorize(rbacService, "leave", "decide"),
			handler.Reject,
		)
	}
}
