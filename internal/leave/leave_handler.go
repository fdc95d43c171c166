package leave

import (
	"net/http"
	"strconv"

	leaveerrors "office-attendance/internal/leave/errors"
	"office-attendance/internal/shared/apperror"
	"office-attendance/internal/shared/clock"
	"office-attendance/internal/shared/contextutil"
	"office-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	clock   clock.Clock
	logger  *zap.Logger
}

func NewHandler(service Service, clk clock.Clock, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &Handler{service: service, clock: clk, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Submit files a request for the logged-in employee.
func (h *Handler) Submit(c *gin.Context) {
	sub, ok := contextutil.GetSubject(c.Request.Context())
	if !ok || sub.ID == 0 {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit leave bind failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), sub.ID, req.Date, req.Reason, h.clock.Now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) AdminSubmit(c *gin.Context) {
	var req AdminSubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http admin submit leave bind failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), req.EmployeeID, req.Date, req.Reason, h.clock.Now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) MyHistory(c *gin.Context) {
	sub, ok := contextutil.GetSubject(c.Request.Context())
	if !ok || sub.ID == 0 {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.History(c.Request.Context(), sub.ID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.List(c, http.StatusOK, resp)
}

func (h *Handler) Pending(c *gin.Context) {
	resp, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.List(c, http.StatusOK, resp)
}

func (h *Handler) Approve(c *gin.Context) {
	h.decide(c, StatusApproved)
}

func (h *Handler) Reject(c *gin.Context) {
	h.decide(c, StatusRejected)
}

func (h *Handler) decide(c *gin.Context, decision string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		h.writeServiceError(c, leaveerrors.ErrInvalidLeaveID)
		return
	}
	h.logger.Debug("http decide leave", zap.Uint64("leave_id", id), zap.String("decision", decision))

	resp, err := h.service.Decide(c.Request.Context(), uint(id), decision)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
