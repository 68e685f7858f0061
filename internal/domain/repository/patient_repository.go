package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Patient, error)
	// FindDirectory returns all patients with their account email and
	// appointment/medical-record counts, newest first.
	FindDirectory(ctx context.Context) ([]entity.PatientDirectoryEntry, error)
}
