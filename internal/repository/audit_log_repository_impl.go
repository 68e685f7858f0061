package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) domainRepo.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, auditLog *entity.AuditLog) error {
	return r.db.WithContext(ctx).Create(auditLog).Error
}

func (r *auditLogRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
