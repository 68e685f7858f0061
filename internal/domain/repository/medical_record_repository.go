package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
)

type MedicalRecordRepository interface {
	Create(ctx context.Context, record *entity.MedicalRecord) error
	// FindByID returns the bare record row (no associations), or nil when
	// it does not exist. Used for ownership checks before mutations.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error)
	// FindByIDDetailed preloads patient, doctor, appointment,
	// prescriptions and test results for single-record reads.
	FindByIDDetailed(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error)
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.MedicalRecord, error)
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.MedicalRecord, error)
	Update(ctx context.Context, record *entity.MedicalRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}
