package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Doctor, error)
	FindByLicenseNumber(ctx context.Context, licenseNumber string) (*entity.Doctor, error)
	FindAll(ctx context.Context) ([]entity.Doctor, error)
}
