package service

import (
	"context"

	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuditService records who did what to which entity. Writes are best
// effort: a failed audit insert is logged and must not fail the request.
type AuditService interface {
	Record(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, detail entity.JSON)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, detail entity.JSON) {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
	}
	for k, v := range detail {
		metadata[k] = v
	}

	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}
}
