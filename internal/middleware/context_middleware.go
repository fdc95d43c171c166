package middleware

import (
	"office-attendance/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger attaches a logger scoped to the request id and, when
// AuthMiddleware ran first, the subject.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		rid := contextutil.GetRequestID(ctx)
		if rid == "" {
			rid = c.GetHeader(RequestIDHeader)
		}
		if rid == "" {
			rid = uuid.New().String()
			c.Header(RequestIDHeader, rid)
		}

		fields := []zap.Field{zap.String("request_id", rid)}
		if sub, ok := contextutil.GetSubject(ctx); ok {
			fields = append(fields,
				zap.Uint("subject_id", sub.ID),
				zap.String("role", sub.Role),
			)
		}
		reqLogger := logger.With(fields...)

		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
