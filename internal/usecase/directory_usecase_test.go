package usecase

import (
	"context"
	"testing"
	"time"

	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDirectoryUsecase_ListPatients(t *testing.T) {
	dob := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	patientRepo := &mockPatientRepo{
		findDirectoryFn: func(ctx context.Context) ([]entity.PatientDirectoryEntry, error) {
			return []entity.PatientDirectoryEntry{
				{
					ID:                 uuid.New(),
					FirstName:          "Jane",
					LastName:           "Doe",
					DateOfBirth:        dob,
					Email:              "jane@example.com",
					AppointmentCount:   3,
					MedicalRecordCount: 2,
				},
			}, nil
		},
	}
	uc := NewDirectoryUsecase(testLogger(), patientRepo, &mockDoctorRepo{})

	result, err := uc.ListPatients(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, "1990-04-12", result.Patients[0].DateOfBirth)
	assert.Equal(t, int64(3), result.Patients[0].AppointmentCount)
	assert.Equal(t, int64(2), result.Patients[0].MedicalRecordCount)
}

func TestDirectoryUsecase_ListDoctors(t *testing.T) {
	doctorRepo := &mockDoctorRepo{
		findAllFn: func(ctx context.Context) ([]entity.Doctor, error) {
			return []entity.Doctor{
				{ID: uuid.New(), FirstName: "Alice", LastName: "Smith", Specialization: "Cardiology", Department: "Cardiology"},
				{ID: uuid.New(), FirstName: "Bob", LastName: "Jones", Specialization: "Neurology", Department: "Neurology"},
			}, nil
		},
	}
	uc := NewDirectoryUsecase(testLogger(), &mockPatientRepo{}, doctorRepo)

	result, err := uc.ListDoctors(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, "Cardiology", result.Doctors[0].Specialization)
}

func TestAuditLogUsecase_ListOwn(t *testing.T) {
	userID := uuid.New()
	var queriedLimit int
	auditRepo := &mockAuditLogRepo{
		findByUserIDFn: func(ctx context.Context, id uuid.UUID, limit int) ([]entity.AuditLog, error) {
			queriedLimit = limit
			assert.Equal(t, userID, id)
			return []entity.AuditLog{
				{ID: 1, UserID: &userID, Action: entity.AuditActionUserLogin},
			}, nil
		},
	}
	uc := NewAuditLogUsecase(testLogger(), auditRepo)

	result, err := uc.ListOwn(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, entity.AuditActionUserLogin, result.Logs[0].Action)
	assert.Equal(t, DefaultAuditLogLimit, queriedLimit)
}
