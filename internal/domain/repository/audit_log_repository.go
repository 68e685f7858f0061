package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
)

type AuditLogRepository interface {
	Create(ctx context.Context, auditLog *entity.AuditLog) error
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]entity.AuditLog, error)
}
