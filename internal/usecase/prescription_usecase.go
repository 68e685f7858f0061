package usecase

import (
	"context"
	"errors"

	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
	// ErrRecordMismatch means the linked medical record belongs to a
	// different patient than the prescription being created.
	ErrRecordMismatch = errors.New("medical record does not belong to this patient")
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, caller Caller, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetByID(ctx context.Context, caller Caller, id uuid.UUID) (*dto.PrescriptionResponse, error)
	List(ctx context.Context, caller Caller) (*dto.PrescriptionListResponse, error)
	Update(ctx context.Context, caller Caller, id uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	Delete(ctx context.Context, caller Caller, id uuid.UUID) error
}

type prescriptionUsecase struct {
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	patientRepo      repository.PatientRepository
	recordRepo       repository.MedicalRecordRepository
	auditService     service.AuditService
}

func NewPrescriptionUsecase(
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	patientRepo repository.PatientRepository,
	recordRepo repository.MedicalRecordRepository,
	auditService service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		log:              log,
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
		recordRepo:       recordRepo,
		auditService:     auditService,
	}
}

// Create issues a prescription. A linked medical record must exist, belong
// to the same patient and be authored by the caller.
func (u *prescriptionUsecase) Create(ctx context.Context, caller Caller, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, ErrPatientNotFound
	}

	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	prescription := &entity.Prescription{
		PatientID:    patientID,
		DoctorID:     caller.ProfileID,
		Medication:   req.Medication,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		Duration:     req.Duration,
		Instructions: req.Instructions,
		FileURL:      req.FileURL,
	}

	if req.MedicalRecordID != nil {
		recordID, err := uuid.Parse(*req.MedicalRecordID)
		if err != nil {
			return nil, ErrRecordNotFound
		}
		record, err := u.recordRepo.FindByID(ctx, recordID)
		if err != nil {
			u.log.Warnf("Failed to find medical record: %+v", err)
			return nil, err
		}
		if record == nil {
			return nil, ErrRecordNotFound
		}
		if record.DoctorID != caller.ProfileID {
			return nil, ErrForbidden
		}
		if record.PatientID != patientID {
			return nil, ErrRecordMismatch
		}
		prescription.MedicalRecordID = &recordID
	}

	if err := u.prescriptionRepo.Create(ctx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &caller.UserID, entity.AuditActionPrescriptionCreate, "prescription", prescription.ID.String(),
		entity.JSON{"patient_id": patientID.String()})

	detailed, err := u.prescriptionRepo.FindByIDDetailed(ctx, prescription.ID)
	if err != nil {
		u.log.Warnf("Failed to reload prescription: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(detailed), nil
}

func (u *prescriptionUsecase) GetByID(ctx context.Context, caller Caller, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByIDDetailed(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	if err := guardRecordRead(caller, prescription.PatientID, prescription.DoctorID); err != nil {
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) List(ctx context.Context, caller Caller) (*dto.PrescriptionListResponse, error) {
	var (
		prescriptions []entity.Prescription
		err           error
	)
	if caller.IsDoctor() {
		prescriptions, err = u.prescriptionRepo.FindByDoctorID(ctx, caller.ProfileID)
	} else {
		prescriptions, err = u.prescriptionRepo.FindByPatientID(ctx, caller.ProfileID)
	}
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}

	responses := converter.PrescriptionsToResponses(prescriptions)
	return &dto.PrescriptionListResponse{Prescriptions: responses, Total: len(responses)}, nil
}

func (u *prescriptionUsecase) Update(ctx context.Context, caller Caller, id uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	if prescription.DoctorID != caller.ProfileID {
		return nil, ErrForbidden
	}

	if req.Medication != nil {
		prescription.Medication = *req.Medication
	}
	if req.Dosage != nil {
		prescription.Dosage = *req.Dosage
	}
	if req.Frequency != nil {
		prescription.Frequency = *req.Frequency
	}
	if req.Duration != nil {
		prescription.Duration = *req.Duration
	}
	if req.Instructions != nil {
		prescription.Instructions = *req.Instructions
	}

	if err := u.prescriptionRepo.Update(ctx, prescription); err != nil {
		u.log.Warnf("Failed to update prescription: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &caller.UserID, entity.AuditActionPrescriptionUpdate, "prescription", prescription.ID.String(), nil)

	detailed, err := u.prescriptionRepo.FindByIDDetailed(ctx, prescription.ID)
	if err != nil {
		u.log.Warnf("Failed to reload prescription: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(detailed), nil
}

func (u *prescriptionUsecase) Delete(ctx context.Context, caller Caller, id uuid.UUID) error {
	prescription, err := u.prescriptionRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return err
	}
	if prescription == nil {
		return ErrPrescriptionNotFound
	}

	if prescription.DoctorID != caller.ProfileID {
		return ErrForbidden
	}

	if err := u.prescriptionRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete prescription: %+v", err)
		return err
	}

	u.auditService.Record(ctx, &caller.UserID, entity.AuditActionPrescriptionDelete, "prescription", id.String(), nil)

	return nil
}
