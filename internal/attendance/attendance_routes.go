package attendance

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
	logger *zap.Logger,
) {
	attendance := r.Group("/attendance")
	attendance.Use(authMW)
	attendance.Use(middleware.ContextLogger(logger))
	{
		attendance.POST("",
			middleware.RateLimitBySubject(1, 3),
			middleware.RBACAuthorize(rbacService, "attendance", "create"),
			handler.Mark,
		)

		attendance.GET("",
			middleware.RateLimitBySubject(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			handler.History,
		)

		attendance.GET("/export",
			middleware.RateLimitBySubject(0.5, 2),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			handler.Export,
		)

		attendance.GET("/years",
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			handler.FilterOptions,
		)
	}
}
