package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"
)

type TestResultRepository interface {
	Create(ctx context.Context, testResult *entity.TestResult) error
}
