package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"office-attendance/internal/middleware"
	"office-attendance/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", middleware.RateLimitByIP(0.001, 2), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodPost, "/login", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, other)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitBySubject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limit := middleware.RateLimitBySubject(0.001, 1)

	alice := gin.New()
	alice.GET("/x", withSubject(contextutil.Subject{ID: 1, Role: "employee"}), limit, func(c *gin.Context) { c.Status(http.StatusOK) })
	anon := gin.New()
	anon.GET("/x", limit, func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	alice.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	alice.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	for i := 0; i < 3; i++ {
		w = httptest.NewRecorder()
		anon.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
