package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"office-attendance/internal/middleware"
	"office-attendance/internal/shared/contextutil"
	"office-attendance/internal/shared/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiEnvelope struct {
	Ok    bool `json:"ok"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func echoSubject(c *gin.Context) {
	sub, ok := contextutil.GetSubject(c.Request.Context())
	if !ok {
		c.Status(http.StatusTeapot)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": sub.ID, "role": sub.Role})
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := token.NewManager("middleware-secret-0123", time.Hour)
	raw, _, err := tokens.Issue(contextutil.Subject{ID: 3, Role: "employee", Name: "Alice"})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(tokens), echoSubject)

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":3,"role":"employee"}`, w.Body.String())
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: raw})
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "UNAUTHORIZED", decode(t, w).Error.Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+raw+"x")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

type fakeRBAC struct {
	allowed bool
	err     error
}

func (f fakeRBAC) Enforce(role, resource, action string) (bool, error) {
	return f.allowed, f.err
}

func withSubject(sub contextutil.Subject) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(contextutil.WithSubject(c.Request.Context(), sub))
		c.Next()
	}
}

func TestRBACAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sub := contextutil.Subject{ID: 1, Role: "employee"}

	tests := []struct {
		name       string
		rbac       fakeRBAC
		withSub    bool
		wantStatus int
		wantCode   string
	}{
		{name: "allowed", rbac: fakeRBAC{allowed: true}, withSub: true, wantStatus: http.StatusOK},
		{name: "denied", rbac: fakeRBAC{allowed: false}, withSub: true, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "enforcer error", rbac: fakeRBAC{err: errors.New("boom")}, withSub: true, wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
		{name: "no subject", rbac: fakeRBAC{allowed: true}, withSub: false, wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			handlers := []gin.HandlerFunc{}
			if tt.withSub {
				handlers = append(handlers, withSubject(sub))
			}
			handlers = append(handlers, middleware.RBACAuthorize(tt.rbac, "leave", "decide"), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})
			r.PUT("/x", handlers...)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/x", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode(t, w).Error.Code)
			}
		})
	}
}
