package handler

import (
	"net/http"

	"go-healthcare-records/internal/delivery/http/middleware"
	"go-healthcare-records/internal/usecase"
	"go-healthcare-records/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

// ListOwn returns the caller's recent activity trail.
func (h *AuditLogHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.auditLogUsecase.ListOwn(r.Context(), identity.UserID)
	if err != nil {
		response.InternalServerError(w, "Failed to list activity")
		return
	}

	response.Success(w, http.StatusOK, "Activity retrieved successfully", result)
}
