package usecase

import (
	"context"

	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultAuditLogLimit caps the activity feed to the most recent entries.
const DefaultAuditLogLimit = 100

// AuditLogUsecase exposes a user's own activity trail. There is no
// cross-user query surface; admins read the table directly.
type AuditLogUsecase interface {
	ListOwn(ctx context.Context, userID uuid.UUID) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (u *auditLogUsecase) ListOwn(ctx context.Context, userID uuid.UUID) (*dto.AuditLogListResponse, error) {
	logs, err := u.auditRepo.FindByUserID(ctx, userID, DefaultAuditLogLimit)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}
	return converter.AuditLogsToResponse(logs), nil
}
