package usecase

import (
	"context"
	"testing"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type appointmentStore struct {
	mockAppointmentRepo
	appointments map[uuid.UUID]*entity.Appointment
}

func newAppointmentStore() *appointmentStore {
	s := &appointmentStore{appointments: make(map[uuid.UUID]*entity.Appointment)}
	s.createFn = func(ctx context.Context, appointment *entity.Appointment) error {
		appointment.ID = uuid.New()
		s.appointments[appointment.ID] = appointment
		return nil
	}
	s.findByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
		return s.appointments[id], nil
	}
	s.updateFn = func(ctx context.Context, appointment *entity.Appointment) error {
		s.appointments[appointment.ID] = appointment
		return nil
	}
	s.deleteFn = func(ctx context.Context, id uuid.UUID) error {
		delete(s.appointments, id)
		return nil
	}
	return s
}

func existingDoctorRepo(doctorID uuid.UUID) *mockDoctorRepo {
	return &mockDoctorRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
			if id == doctorID {
				return &entity.Doctor{ID: doctorID}, nil
			}
			return nil, nil
		},
	}
}

func TestAppointmentUsecase_Create_AsPatient(t *testing.T) {
	patient := patientCaller()
	doctorID := uuid.New()
	store := newAppointmentStore()

	uc := NewAppointmentUsecase(testLogger(), store, &mockPatientRepo{}, existingDoctorRepo(doctorID), &mockAuditService{})

	doctorRef := doctorID.String()
	result, err := uc.Create(context.Background(), patient, &dto.CreateAppointmentRequest{
		DoctorID:        &doctorRef,
		AppointmentDate: "2025-07-15",
		AppointmentTime: "10:30",
		Reason:          "Checkup",
	})
	assert.NoError(t, err)

	// The patient side always comes from the session.
	assert.Equal(t, patient.ProfileID, result.PatientID)
	assert.Equal(t, doctorID, result.DoctorID)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), result.Status)
}

func TestAppointmentUsecase_Create_AsDoctor(t *testing.T) {
	doctor := doctorCaller()
	patientID := uuid.New()
	store := newAppointmentStore()

	uc := NewAppointmentUsecase(testLogger(), store, existingPatientRepo(patientID), &mockDoctorRepo{}, &mockAuditService{})

	patientRef := patientID.String()
	result, err := uc.Create(context.Background(), doctor, &dto.CreateAppointmentRequest{
		PatientID:       &patientRef,
		AppointmentDate: "2025-07-15",
		AppointmentTime: "14:00",
		Reason:          "Follow-up",
	})
	assert.NoError(t, err)
	assert.Equal(t, doctor.ProfileID, result.DoctorID)
	assert.Equal(t, patientID, result.PatientID)
}

func TestAppointmentUsecase_Create_MissingCounterpart(t *testing.T) {
	uc := NewAppointmentUsecase(testLogger(), newAppointmentStore(), &mockPatientRepo{}, &mockDoctorRepo{}, &mockAuditService{})

	_, err := uc.Create(context.Background(), patientCaller(), &dto.CreateAppointmentRequest{
		AppointmentDate: "2025-07-15",
		AppointmentTime: "10:30",
		Reason:          "Checkup",
	})
	assert.ErrorIs(t, err, ErrCounterpartRequired)

	_, err = uc.Create(context.Background(), doctorCaller(), &dto.CreateAppointmentRequest{
		AppointmentDate: "2025-07-15",
		AppointmentTime: "10:30",
		Reason:          "Checkup",
	})
	assert.ErrorIs(t, err, ErrCounterpartRequired)
}

func TestAppointmentUsecase_Create_UnknownDoctor(t *testing.T) {
	uc := NewAppointmentUsecase(testLogger(), newAppointmentStore(), &mockPatientRepo{}, &mockDoctorRepo{}, &mockAuditService{})

	doctorRef := uuid.New().String()
	_, err := uc.Create(context.Background(), patientCaller(), &dto.CreateAppointmentRequest{
		DoctorID:        &doctorRef,
		AppointmentDate: "2025-07-15",
		AppointmentTime: "10:30",
		Reason:          "Checkup",
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestAppointmentUsecase_UpdateDelete_DoctorOnly(t *testing.T) {
	ctx := context.Background()
	doctorA := doctorCaller()
	doctorB := doctorCaller()
	patientP := patientCaller()

	store := newAppointmentStore()
	appointmentID := uuid.New()
	store.appointments[appointmentID] = &entity.Appointment{
		ID:        appointmentID,
		PatientID: patientP.ProfileID,
		DoctorID:  doctorA.ProfileID,
		Status:    entity.AppointmentStatusScheduled,
	}

	uc := NewAppointmentUsecase(testLogger(), store, &mockPatientRepo{}, &mockDoctorRepo{}, &mockAuditService{})

	// Both sides may read it.
	_, err := uc.GetByID(ctx, patientP, appointmentID)
	assert.NoError(t, err)
	_, err = uc.GetByID(ctx, doctorA, appointmentID)
	assert.NoError(t, err)
	_, err = uc.GetByID(ctx, doctorB, appointmentID)
	assert.ErrorIs(t, err, ErrForbidden)

	// The subject patient cannot mutate; only the appointment's doctor.
	completed := string(entity.AppointmentStatusCompleted)
	_, err = uc.Update(ctx, patientP, appointmentID, &dto.UpdateAppointmentRequest{Status: &completed})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = uc.Update(ctx, doctorB, appointmentID, &dto.UpdateAppointmentRequest{Status: &completed})
	assert.ErrorIs(t, err, ErrForbidden)
	updated, err := uc.Update(ctx, doctorA, appointmentID, &dto.UpdateAppointmentRequest{Status: &completed})
	assert.NoError(t, err)
	assert.Equal(t, completed, updated.Status)

	err = uc.Delete(ctx, patientP, appointmentID)
	assert.ErrorIs(t, err, ErrForbidden)
	err = uc.Delete(ctx, doctorA, appointmentID)
	assert.NoError(t, err)

	err = uc.Delete(ctx, doctorA, appointmentID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
