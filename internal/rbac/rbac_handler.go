package rbac

import (
	"net/http"

	"office-attendance/internal/shared/apperror"
	"office-attendance/internal/shared/contextutil"
	"office-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// MyPermissions reports what the logged-in subject's role may do.
func (h *Handler) MyPermissions(c *gin.Context) {
	sub, ok := contextutil.GetSubject(c.Request.Context())
	if !ok {
		response.FromError(c, apperror.ErrUnauthorized)
		return
	}

	perms, err := h.service.Permissions(sub.Role)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, PermissionsResponse{
		Role:        sub.Role,
		Permissions: perms,
	}, nil)
}
