package auth

import (
	"office-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/admin/login", middleware.RateLimitByIP(0.2, 5), handler.AdminLogin)
		auth.POST("/employee/login", middleware.RateLimitByIP(0.2, 5), handler.EmployeeLogin)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", authMW, middleware.RateLimitBySubject(2, 5), handler.Me)
	}
}
