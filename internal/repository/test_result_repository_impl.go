package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"

	"gorm.io/gorm"
)

type testResultRepository struct {
	db *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) domainRepo.TestResultRepository {
	return &testResultRepository{db: db}
}

func (r *testResultRepository) Create(ctx context.Context, testResult *entity.TestResult) error {
	return r.db.WithContext(ctx).Create(testResult).Error
}
