package attendance

import (
	"fmt"
	"net/http"

	"office-attendance/internal/shared/apperror"
	"office-attendance/internal/shared/clock"
	"office-attendance/internal/shared/contextutil"
	"office-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	clock   clock.Clock
	logger  *zap.Logger
}

func NewHandler(service Service, clk clock.Clock, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &Handler{service: service, clock: clk, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) subject(c *gin.Context) (contextutil.Subject, bool) {
	sub, ok := contextutil.GetSubject(c.Request.Context())
	if !ok || sub.ID == 0 {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return contextutil.Subject{}, false
	}
	return sub, true
}

func (h *Handler) Mark(c *gin.Context) {
	sub, ok := h.subject(c)
	if !ok {
		return
	}
	h.logger.Debug("http mark attendance", zap.Uint("employee_id", sub.ID))

	resp, err := h.service.MarkAttendance(c.Request.Context(), sub.ID, h.clock.Now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	status := http.StatusCreated
	if resp.Result == MarkResultAlreadyMarked {
		status = http.StatusOK
	}
	response.Success(c, status, resp, nil)
}

func (h *Handler) History(c *gin.Context) {
	sub, ok := h.subject(c)
	if !ok {
		return
	}
	q := bindHistoryQuery(c)

	resp, err := h.service.QueryHistory(c.Request.Context(), sub.ID, q.Month, q.Year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, &response.Meta{Total: resp.Statistics.Total})
}

func (h *Handler) Export(c *gin.Context) {
	sub, ok := h.subject(c)
	if !ok {
		return
	}
	q := bindHistoryQuery(c)

	data, err := h.service.ExportHistory(c.Request.Context(), sub.ID, q.Month, q.Year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("attendance_%s_%s.xlsx", q.Month, q.Year)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *Handler) FilterOptions(c *gin.Context) {
	response.Success(c, http.StatusOK, YearOptionsResponse{
		Months: MonthOptions(),
		Years:  YearOptions(h.clock.Now()),
	}, nil)
}

// bindHistoryQuery treats a missing filter as "All".
func bindHistoryQuery(c *gin.Context) HistoryQuery {
	return HistoryQuery{
		Month: c.DefaultQuery("month", FilterAll),
		Year:  c.DefaultQuery("year", FilterAll),
	}
}
