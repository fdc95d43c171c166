package app

import (
	"net/http"
	"time"

	"office-attendance/internal/attendance"
	"office-attendance/internal/auth"
	"office-attendance/internal/config"
	"office-attendance/internal/employee"
	"office-attendance/internal/leave"
	"office-attendance/internal/messaging/kafka"
	"office-attendance/internal/middleware"
	"office-attendance/internal/rbac"
	"office-attendance/internal/shared/clock"
	"office-attendance/internal/shared/response"
	"office-attendance/internal/shared/token"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const idempotencyTTL = 24 * time.Hour

// Deps are the shared collaborators every module is built from. Redis is
// optional.
type Deps struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Tokens *token.Manager
	Clock  clock.Clock
	Config *config.Config
	Logger *zap.Logger
}

func NewRouter(deps Deps) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.Server.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader, middleware.IdempotencyKeyHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.ContextLogger(deps.Logger))

	router.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := deps.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "Database unreachable", nil)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	if err := registerModules(router, deps); err != nil {
		return nil, err
	}
	return router, nil
}

func registerModules(router *gin.Engine, deps Deps) error {
	logger := deps.Logger

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(deps.DB)
	authRepo := auth.NewRepository(deps.DB)
	employeeRepo := employee.NewRepository(deps.DB)
	leaveRepo := leave.NewRepository(deps.DB)

	var outboxRepo kafka.OutboxRepository
	if deps.Config.Outbox.Enabled {
		outboxRepo = kafka.NewOutboxRepository(deps.DB)
	}

	// --- RBAC Core ---
	rbacService, err := rbac.NewDefaultService(logger)
	if err != nil {
		return err
	}

	// --- Services ---
	attendanceService := attendance.NewService(attendanceRepo, logger)
	authService := auth.NewService(authRepo, employeeRepo, deps.Tokens, logger)
	employeeService := employee.NewServiceWithOutbox(deps.DB, employeeRepo, outboxRepo, deps.Redis, logger)
	leaveService := leave.NewServiceWithOutbox(deps.DB, leaveRepo, outboxRepo, logger)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService, deps.Clock, logger)
	authHandler := auth.NewHandler(authService, deps.Config.Server.SecureCookie, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	leaveHandler := leave.NewHandler(leaveService, deps.Clock, logger)
	rbacHandler := rbac.NewHandler(rbacService)

	authMW := middleware.AuthMiddleware(deps.Tokens)
	idempotency := middleware.Idempotency(deps.Redis, idempotencyTTL)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMW)
		attendance.RegisterRoutes(api, attendanceHandler, authMW, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, authMW, rbacService, idempotency, logger)
		leave.RegisterRoutes(api, leaveHandler, authMW, rbacService, idempotency, logger)
		rbac.RegisterRoutes(api, rbacHandler, authMW, rbacService)
	}

	return nil
}
