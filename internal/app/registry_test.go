package app_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"office-attendance/internal/app"
	"office-attendance/internal/config"
	"office-attendance/internal/schema/schematest"
	"office-attendance/internal/shared/clock"
	"office-attendance/internal/shared/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type client struct {
	t      *testing.T
	router *gin.Engine
}

func (c client) do(method, path, bearer string, body any) (int, envelope) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func login(t *testing.T, c client, path string, body any) string {
	t.Helper()
	code, env := c.do(http.MethodPost, path, "", body)
	require.Equal(t, http.StatusOK, code)
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	return resp.AccessToken
}

func newTestRouter(t *testing.T, now time.Time) client {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Server: config.ServerConfig{AllowOrigins: []string{"http://localhost:5173"}},
	}
	router, err := app.NewRouter(app.Deps{
		DB:     schematest.NewDB(t),
		Tokens: token.NewManager("router-test-secret-123", time.Hour),
		Clock:  clock.Fixed(now),
		Config: cfg,
		Logger: zap.NewNop(),
	})
	require.NoError(t, err)
	return client{t: t, router: router}
}

func TestRouter_AttendanceAndLeaveFlow(t *testing.T) {
	c := newTestRouter(t, time.Date(2024, 6, 1, 9, 30, 0, 0, time.Local))

	code, _ := c.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, code)

	adminToken := login(t, c, "/api/v1/auth/admin/login", map[string]string{"username": "admin", "password": "admin123"})

	code, env := c.do(http.MethodPost, "/api/v1/employees", adminToken, map[string]string{
		"name": "Alice", "email": "alice@x.io", "phone": "5551234567", "gender": "Female", "role": "Developer",
	})
	require.Equal(t, http.StatusCreated, code, env.Error)
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	code, env = c.do(http.MethodPost, "/api/v1/employees", adminToken, map[string]string{
		"name": "Alice 2", "email": "alice@x.io", "phone": "5551234567", "gender": "Female", "role": "Developer",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "DUPLICATE_ENTRY", env.Error.Code)

	employeeToken := login(t, c, "/api/v1/auth/employee/login", map[string]string{"email": "alice@x.io"})

	code, _ = c.do(http.MethodGet, "/api/v1/employees", employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = c.do(http.MethodPost, "/api/v1/attendance", employeeToken, nil)
	assert.Equal(t, http.StatusCreated, code)
	code, env = c.do(http.MethodPost, "/api/v1/attendance", employeeToken, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"AlreadyMarked"`)

	code, env = c.do(http.MethodGet, "/api/v1/attendance?month=June&year=2024", employeeToken, nil)
	require.Equal(t, http.StatusOK, code)
	var history struct {
		Records []struct {
			Date    string `json:"date"`
			Weekday string `json:"weekday"`
		} `json:"records"`
		Statistics struct {
			Present int `json:"present"`
			Total   int `json:"total"`
		} `json:"statistics"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &history))
	require.Len(t, history.Records, 1)
	assert.Equal(t, "2024-06-01", history.Records[0].Date)
	assert.Equal(t, "Saturday", history.Records[0].Weekday)
	assert.Equal(t, 1, history.Statistics.Total)

	code, env = c.do(http.MethodPost, "/api/v1/leaves", employeeToken, map[string]string{"date": "2024-05-31", "reason": "late"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_DATE", env.Error.Code)

	code, env = c.do(http.MethodPost, "/api/v1/leaves", employeeToken, map[string]string{"date": "2024-06-10", "reason": "Trip"})
	require.Equal(t, http.StatusCreated, code)
	var leave struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &leave))
	assert.Equal(t, "Pending", leave.Status)

	code, _ = c.do(http.MethodPut, "/api/v1/admin/leaves/"+strconv.Itoa(int(leave.ID))+"/approve", employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, env = c.do(http.MethodGet, "/api/v1/admin/leaves/pending", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"employee_name":"Alice"`)

	code, _ = c.do(http.MethodPut, "/api/v1/admin/leaves/"+strconv.Itoa(int(leave.ID))+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusOK, code)

	code, env = c.do(http.MethodGet, "/api/v1/leaves/me", employeeToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"status":"Approved"`)

	code, _ = c.do(http.MethodDelete, "/api/v1/employees/"+strconv.Itoa(int(created.ID)), adminToken, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestRouter_RequiresSession(t *testing.T) {
	c := newTestRouter(t, time.Date(2024, 6, 1, 9, 30, 0, 0, time.Local))

	code, env := c.do(http.MethodGet, "/api/v1/attendance", "", nil)

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}
