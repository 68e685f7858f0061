package usecase

import (
	"context"
	"testing"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type prescriptionStore struct {
	mockPrescriptionRepo
	prescriptions map[uuid.UUID]*entity.Prescription
}

func newPrescriptionStore() *prescriptionStore {
	s := &prescriptionStore{prescriptions: make(map[uuid.UUID]*entity.Prescription)}
	s.createFn = func(ctx context.Context, prescription *entity.Prescription) error {
		prescription.ID = uuid.New()
		s.prescriptions[prescription.ID] = prescription
		return nil
	}
	s.findByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
		return s.prescriptions[id], nil
	}
	s.findByIDDetailedFn = s.findByIDFn
	s.updateFn = func(ctx context.Context, prescription *entity.Prescription) error {
		s.prescriptions[prescription.ID] = prescription
		return nil
	}
	s.deleteFn = func(ctx context.Context, id uuid.UUID) error {
		delete(s.prescriptions, id)
		return nil
	}
	return s
}

func TestPrescriptionUsecase_Create(t *testing.T) {
	doctor := doctorCaller()
	patientID := uuid.New()
	store := newPrescriptionStore()
	audit := &mockAuditService{}

	uc := NewPrescriptionUsecase(testLogger(), store, existingPatientRepo(patientID),
		&mockMedicalRecordRepo{}, audit)

	result, err := uc.Create(context.Background(), doctor, &dto.CreatePrescriptionRequest{
		PatientID:  patientID.String(),
		Medication: "Amoxicillin",
		Dosage:     "500mg",
		Frequency:  "3x daily",
		Duration:   "7 days",
	})
	assert.NoError(t, err)
	assert.Equal(t, doctor.ProfileID, result.DoctorID)
	assert.Contains(t, audit.actions, entity.AuditActionPrescriptionCreate)
}

func TestPrescriptionUsecase_Create_LinkedRecordChecks(t *testing.T) {
	doctorA := doctorCaller()
	doctorB := doctorCaller()
	patientID := uuid.New()
	recordID := uuid.New()

	recordRepo := &mockMedicalRecordRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error) {
			if id == recordID {
				return &entity.MedicalRecord{ID: recordID, PatientID: patientID, DoctorID: doctorA.ProfileID}, nil
			}
			return nil, nil
		},
	}
	uc := NewPrescriptionUsecase(testLogger(), newPrescriptionStore(), existingPatientRepo(patientID),
		recordRepo, &mockAuditService{})

	recordRef := recordID.String()
	base := dto.CreatePrescriptionRequest{
		PatientID:       patientID.String(),
		MedicalRecordID: &recordRef,
		Medication:      "Ibuprofen",
		Dosage:          "200mg",
		Frequency:       "2x daily",
		Duration:        "5 days",
	}

	// Another doctor's record cannot be linked.
	req := base
	_, err := uc.Create(context.Background(), doctorB, &req)
	assert.ErrorIs(t, err, ErrForbidden)

	// A nonexistent record is not-found.
	missingRef := uuid.New().String()
	req = base
	req.MedicalRecordID = &missingRef
	_, err = uc.Create(context.Background(), doctorA, &req)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	// The authoring doctor may link it.
	req = base
	result, err := uc.Create(context.Background(), doctorA, &req)
	assert.NoError(t, err)
	assert.Equal(t, recordID, *result.MedicalRecordID)
}

func TestPrescriptionUsecase_OwnershipMatrix(t *testing.T) {
	ctx := context.Background()
	doctorA := doctorCaller()
	doctorB := doctorCaller()
	patientP := patientCaller()

	store := newPrescriptionStore()
	uc := NewPrescriptionUsecase(testLogger(), store, existingPatientRepo(patientP.ProfileID),
		&mockMedicalRecordRepo{}, &mockAuditService{})

	created, err := uc.Create(ctx, doctorA, &dto.CreatePrescriptionRequest{
		PatientID:  patientP.ProfileID.String(),
		Medication: "Metformin",
		Dosage:     "850mg",
		Frequency:  "2x daily",
		Duration:   "30 days",
	})
	assert.NoError(t, err)

	_, err = uc.GetByID(ctx, patientP, created.ID)
	assert.NoError(t, err)
	_, err = uc.GetByID(ctx, doctorB, created.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	newDosage := "1000mg"
	_, err = uc.Update(ctx, doctorB, created.ID, &dto.UpdatePrescriptionRequest{Dosage: &newDosage})
	assert.ErrorIs(t, err, ErrForbidden)
	updated, err := uc.Update(ctx, doctorA, created.ID, &dto.UpdatePrescriptionRequest{Dosage: &newDosage})
	assert.NoError(t, err)
	assert.Equal(t, "1000mg", updated.Dosage)

	err = uc.Delete(ctx, doctorB, created.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	err = uc.Delete(ctx, doctorA, created.ID)
	assert.NoError(t, err)

	_, err = uc.GetByID(ctx, doctorA, created.ID)
	assert.ErrorIs(t, err, ErrPrescriptionNotFound)
}
