package middleware

import (
	"strings"

	"office-attendance/internal/shared/apperror"
	"office-attendance/internal/shared/contextutil"
	"office-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookie = "access_token"

// TokenParser verifies a raw session token.
type TokenParser interface {
	Parse(raw string) (contextutil.Subject, error)
}

// AuthMiddleware accepts a Bearer header or the access_token cookie and puts
// the verified subject on both the gin and the request context.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			raw = ""
		}
		if raw == "" {
			if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
				raw = cookie
			}
		}

		if raw == "" {
			response.FromError(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		sub, err := tokens.Parse(raw)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		c.Set("subject_id", sub.ID)
		c.Set("role", sub.Role)
		c.Request = c.Request.WithContext(contextutil.WithSubject(c.Request.Context(), sub))

		c.Next()
	}
}
