package auth

import (
	"net/http"
	"time"

	"office-attendance/internal/middleware"
	"office-attendance/internal/shared/apperror"
	"office-attendance/internal/shared/contextutil"
	"office-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service      Service
	secureCookie bool
	logger       *zap.Logger
}

// NewHandler builds the login handler. secureCookie marks the session cookie
// Secure and should be set whenever the API is served over TLS.
func NewHandler(service Service, secureCookie bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, secureCookie: secureCookie, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) respond(c *gin.Context, resp AuthResponse) {
	maxAge := int(time.Until(resp.ExpiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	h.setSessionCookie(c, resp.AccessToken, maxAge)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.ErrInvalidInput)
		return
	}

	resp, err := h.service.AdminLogin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.respond(c, resp)
}

func (h *Handler) EmployeeLogin(c *gin.Context) {
	var req EmployeeLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.ErrInvalidInput)
		return
	}

	resp, err := h.service.EmployeeLogin(c.Request.Context(), req.Email)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.respond(c, resp)
}

func (h *Handler) Me(c *gin.Context) {
	sub, ok := contextutil.GetSubject(c.Request.Context())
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	response.Success(c, http.StatusOK, MeResponse{SubjectID: sub.ID, Role: sub.Role, Name: sub.Name}, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}
