package usecase

import (
	"context"
	"errors"
	"time"

	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrRecordNotFound      = errors.New("medical record not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrAppointmentMismatch means the linked appointment belongs to a
	// different patient than the record being created.
	ErrAppointmentMismatch = errors.New("appointment does not belong to this patient")
)

type MedicalRecordUsecase interface {
	Create(ctx context.Context, caller Caller, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetByID(ctx context.Context, caller Caller, id uuid.UUID) (*dto.MedicalRecordResponse, error)
	List(ctx context.Context, caller Caller) (*dto.MedicalRecordListResponse, error)
	Update(ctx context.Context, caller Caller, id uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	Delete(ctx context.Context, caller Caller, id uuid.UUID) error
	AddTestResult(ctx context.Context, caller Caller, recordID uuid.UUID, req *dto.AddTestResultRequest) (*dto.TestResultResponse, error)
}

type medicalRecordUsecase struct {
	log             *logrus.Logger
	recordRepo      repository.MedicalRecordRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	testResultRepo  repository.TestResultRepository
	auditService    service.AuditService
}

func NewMedicalRecordUsecase(
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	testResultRepo repository.TestResultRepository,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		log:             log,
		recordRepo:      recordRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		testResultRepo:  testResultRepo,
		auditService:    auditService,
	}
}

// Create authors a record for a patient. DoctorID is always the caller's
// profile id; client input never chooses the author.
func (u *medicalRecordUsecase) Create(ctx context.Context, caller Caller, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
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

	record := &entity.MedicalRecord{
		PatientID: patientID,
		DoctorID:  caller.ProfileID,
		Diagnosis: req.Diagnosis,
		Symptoms:  req.Symptoms,
		Notes:     req.Notes,
	}

	if req.AppointmentID != nil {
		appointmentID, err := uuid.Parse(*req.AppointmentID)
		if err != nil {
			return nil, ErrAppointmentNotFound
		}
		appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
		if err != nil {
			u.log.Warnf("Failed to find appointment: %+v", err)
			return nil, err
		}
		if appointment == nil {
			return nil, ErrAppointmentNotFound
		}
		if appointment.PatientID != patientID {
			return nil, ErrAppointmentMismatch
		}
		record.AppointmentID = &appointmentID
	}

	if err := u.recordRepo.Create(ctx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	if req.TestResult != nil {
		if _, err := u.createTestResult(ctx, caller, record, req.TestResult.TestName, req.TestResult.TestDate,
			req.TestResult.ResultValue, req.TestResult.FileURL, req.TestResult.Notes); err != nil {
			return nil, err
		}
	}

	u.auditService.Record(ctx, &caller.UserID, entity.AuditActionRecordCreate, "medical_record", record.ID.String(),
		entity.JSON{"patient_id": patientID.String()})

	detailed, err := u.recordRepo.FindByIDDetailed(ctx, record.ID)
	if err != nil {
		u.log.Warnf("Failed to reload medical record: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(detailed), nil
}

func (u *medicalRecordUsecase) GetByID(ctx context.Context, caller Caller, id uuid.UUID) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindByIDDetailed(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	if err := guardRecordRead(caller, record.PatientID, record.DoctorID); err != nil {
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

// List returns records scoped to the caller: the patient's own records,
// or the records the doctor authored.
func (u *medicalRecordUsecase) List(ctx context.Context, caller Caller) (*dto.MedicalRecordListResponse, error) {
	var (
		records []entity.MedicalRecord
		err     error
	)
	if caller.IsDoctor() {
		records, err = u.recordRepo.FindByDoctorID(ctx, caller.ProfileID)
	} else {
		records, err = u.recordRepo.FindByPatientID(ctx, caller.ProfileID)
	}
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}

	responses := converter.MedicalRecordsToResponses(records)
	return &dto.MedicalRecordListResponse{Records: responses, Total: len(responses)}, nil
}

func (u *medicalRecordUsecase) Update(ctx context.Context, caller Caller, id uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindByID(ctx, id)
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

	if req.Diagnosis != nil {
		record.Diagnosis = *req.Diagnosis
	}
	if req.Symptoms != nil {
		record.Symptoms = *req.Symptoms
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}

	if err := u.recordRepo.Update(ctx, record); err != nil {
		u.log.Warnf("Failed to update medical record: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &caller.UserID, entity.AuditActionRecordUpdate, "medical_record", record.ID.String(), nil)

	detailed, err := u.recordRepo.FindByIDDetailed(ctx, record.ID)
	if err != nil {
		u.log.Warnf("Failed to reload medical record: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(detailed), nil
}

func (u *medicalRecordUsecase) Delete(ctx context.Context, caller Caller, id uuid.UUID) error {
	record, err := u.recordRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return err
	}
	if record == nil {
		return ErrRecordNotFound
	}

	if record.DoctorID != caller.ProfileID {
		return ErrForbidden
	}

	if err := u.recordRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete medical record: %+v", err)
		return err
	}

	u.auditService.Record(ctx, &caller.UserID, entity.AuditActionRecordDelete, "medical_record", id.String(), nil)

	return nil
}

func (u *medicalRecordUsecase) AddTestResult(ctx context.Context, caller Caller, recordID uuid.UUID, req *dto.AddTestResultRequest) (*dto.TestResultResponse, error) {
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

	testResult, err := u.createTestResult(ctx, caller, record, req.TestName, req.TestDate, req.ResultValue, req.FileURL, req.Notes)
	if err != nil {
		return nil, err
	}

	return converter.TestResultToResponse(testResult), nil
}

func (u *medicalRecordUsecase) createTestResult(ctx context.Context, caller Caller, record *entity.MedicalRecord,
	testName, testDate, resultValue string, fileURL *string, notes string) (*entity.TestResult, error) {

	date, err := time.Parse("2006-01-02", testDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	testResult := &entity.TestResult{
		PatientID:       record.PatientID,
		DoctorID:        caller.ProfileID,
		MedicalRecordID: record.ID,
		TestName:        testName,
		TestDate:        date,
		ResultValue:     resultValue,
		FileURL:         fileURL,
		Notes:           notes,
	}

	if err := u.testResultRepo.Create(ctx, testResult); err != nil {
		u.log.Warnf("Failed to create test result: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &caller.UserID, entity.AuditActionTestResultCreate, "test_result", testResult.ID.String(),
		entity.JSON{"medical_record_id": record.ID.String()})

	return testResult, nil
}

// guardRecordRead allows the subject patient and the authoring doctor.
func guardRecordRead(caller Caller, patientID, doctorID uuid.UUID) error {
	if caller.IsDoctor() {
		if doctorID != caller.ProfileID {
			return ErrForbidden
		}
		return nil
	}
	if patientID != caller.ProfileID {
		return ErrForbidden
	}
	return nil
}
