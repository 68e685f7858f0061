package converter

import (
	"time"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
)

func AuditLogsToResponse(logs []entity.AuditLog) *dto.AuditLogListResponse {
	items := make([]dto.AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, dto.AuditLogResponse{
			ID:        l.ID,
			Action:    l.Action,
			Metadata:  l.Metadata,
			CreatedAt: l.CreatedAt.Format(time.RFC3339),
		})
	}
	return &dto.AuditLogListResponse{
		Logs:  items,
		Total: len(items),
	}
}
