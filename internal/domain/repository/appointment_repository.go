package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
