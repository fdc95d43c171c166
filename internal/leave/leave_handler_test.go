package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"office-attendance/internal/leave"
	leaveerrors "office-attendance/internal/leave/errors"
	"office-attendance/internal/shared/clock"
	"office-attendance/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveService struct {
	submitFn      func(ctx context.Context, employeeID uint, date, reason string, today time.Time) (leave.LeaveResponse, error)
	decideFn      func(ctx context.Context, leaveID uint, decision string) (leave.LeaveResponse, error)
	listPendingFn func(ctx context.Context) ([]leave.LeaveResponse, error)
	historyFn     func(ctx context.Context, employeeID uint) ([]leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Submit(ctx context.Context, employeeID uint, date, reason string, today time.Time) (leave.LeaveResponse, error) {
	return f.submitFn(ctx, employeeID, date, reason, today)
}
func (f *fakeLeaveService) Decide(ctx context.Context, leaveID uint, decision string) (leave.LeaveResponse, error) {
	return f.decideFn(ctx, leaveID, decision)
}
func (f *fakeLeaveService) ListPending(ctx context.Context) ([]leave.LeaveResponse, error) {
	return f.listPendingFn(ctx)
}
func (f *fakeLeaveService) History(ctx context.Context, employeeID uint) ([]leave.LeaveResponse, error) {
	return f.historyFn(ctx, employeeID)
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupRouter(svc leave.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := leave.NewHandler(svc, clock.Fixed(today))
	r.Use(func(c *gin.Context) {
		ctx := contextutil.WithSubject(c.Request.Context(), contextutil.Subject{ID: 9, Role: "employee"})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	r.POST("/leaves", h.Submit)
	r.GET("/leaves/me", h.MyHistory)
	r.POST("/admin/leaves", h.AdminSubmit)
	r.GET("/admin/leaves/pending", h.Pending)
	r.PUT("/admin/leaves/:id/approve", h.Approve)
	r.PUT("/admin/leaves/:id/reject", h.Reject)
	return r
}

func TestHandler_Submit(t *testing.T) {
	t.Run("uses subject and clock", func(t *testing.T) {
		svc := &fakeLeaveService{
			submitFn: func(_ context.Context, employeeID uint, date, reason string, now time.Time) (leave.LeaveResponse, error) {
				assert.Equal(t, uint(9), employeeID)
				assert.Equal(t, "2024-03-01", date)
				assert.Equal(t, "trip", reason)
				assert.True(t, now.Equal(today))
				return leave.LeaveResponse{ID: 1, EmployeeID: employeeID, Date: date, Reason: reason, Status: leave.StatusPending}, nil
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(`{"date":"2024-03-01","reason":"trip"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("past date", func(t *testing.T) {
		svc := &fakeLeaveService{
			submitFn: func(context.Context, uint, string, string, time.Time) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrPastDate
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(`{"date":"2020-01-01","reason":"trip"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var env apiEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "INVALID_DATE", env.Error.Code)
		assert.Equal(t, "You can only apply for upcoming dates.", env.Error.Message)
	})
}

func TestHandler_AdminSubmit(t *testing.T) {
	svc := &fakeLeaveService{
		submitFn: func(_ context.Context, employeeID uint, _ string, _ string, _ time.Time) (leave.LeaveResponse, error) {
			assert.Equal(t, uint(3), employeeID)
			return leave.LeaveResponse{ID: 2, EmployeeID: employeeID}, nil
		},
	}
	req := httptest.NewRequest(http.MethodPost, "/admin/leaves", strings.NewReader(`{"employee_id":3,"date":"2024-03-01","reason":"trip"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Decide(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		svc := &fakeLeaveService{
			decideFn: func(_ context.Context, id uint, decision string) (leave.LeaveResponse, error) {
				assert.Equal(t, uint(12), id)
				assert.Equal(t, leave.StatusApproved, decision)
				return leave.LeaveResponse{ID: id, Status: decision}, nil
			},
		}
		w := httptest.NewRecorder()

		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/admin/leaves/12/approve", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reject missing", func(t *testing.T) {
		svc := &fakeLeaveService{
			decideFn: func(_ context.Context, _ uint, decision string) (leave.LeaveResponse, error) {
				assert.Equal(t, leave.StatusRejected, decision)
				return leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound
			},
		}
		w := httptest.NewRecorder()

		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/admin/leaves/77/reject", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		w := httptest.NewRecorder()

		setupRouter(&fakeLeaveService{}).ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/admin/leaves/x/approve", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Lists(t *testing.T) {
	svc := &fakeLeaveService{
		listPendingFn: func(context.Context) ([]leave.LeaveResponse, error) {
			return []leave.LeaveResponse{{ID: 1, EmployeeName: "Bob", Status: leave.StatusPending}}, nil
		},
		historyFn: func(_ context.Context, employeeID uint) ([]leave.LeaveResponse, error) {
			assert.Equal(t, uint(9), employeeID)
			return nil, nil
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/leaves/pending", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"employee_name":"Bob"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves/me", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}
