package usecase

import (
	"context"
	"time"

	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/service"

	"github.com/google/uuid"
)

// Function-field mocks. Unset fields mean "not found, no error" so tests
// only wire the calls they care about.

type mockUserRepo struct {
	createWithProfileFn  func(ctx context.Context, user *entity.User) error
	findByEmailFn        func(ctx context.Context, email string) (*entity.User, error)
	findByIDFn           func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	updatePasswordHashFn func(ctx context.Context, id uuid.UUID, passwordHash string) error
}

var _ repository.UserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) CreateWithProfile(ctx context.Context, user *entity.User) error {
	if m.createWithProfileFn != nil {
		return m.createWithProfileFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	if m.updatePasswordHashFn != nil {
		return m.updatePasswordHashFn(ctx, id, passwordHash)
	}
	return nil
}

type mockPatientRepo struct {
	findByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	findByUserIDFn  func(ctx context.Context, userID uuid.UUID) (*entity.Patient, error)
	findDirectoryFn func(ctx context.Context) ([]entity.PatientDirectoryEntry, error)
}

var _ repository.PatientRepository = (*mockPatientRepo)(nil)

func (m *mockPatientRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPatientRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Patient, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockPatientRepo) FindDirectory(ctx context.Context) ([]entity.PatientDirectoryEntry, error) {
	if m.findDirectoryFn != nil {
		return m.findDirectoryFn(ctx)
	}
	return nil, nil
}

type mockDoctorRepo struct {
	findByIDFn            func(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	findByUserIDFn        func(ctx context.Context, userID uuid.UUID) (*entity.Doctor, error)
	findByLicenseNumberFn func(ctx context.Context, licenseNumber string) (*entity.Doctor, error)
	findAllFn             func(ctx context.Context) ([]entity.Doctor, error)
}

var _ repository.DoctorRepository = (*mockDoctorRepo)(nil)

func (m *mockDoctorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockDoctorRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Doctor, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockDoctorRepo) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*entity.Doctor, error) {
	if m.findByLicenseNumberFn != nil {
		return m.findByLicenseNumberFn(ctx, licenseNumber)
	}
	return nil, nil
}

func (m *mockDoctorRepo) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

type mockMedicalRecordRepo struct {
	createFn           func(ctx context.Context, record *entity.MedicalRecord) error
	findByIDFn         func(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error)
	findByIDDetailedFn func(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error)
	findByPatientIDFn  func(ctx context.Context, patientID uuid.UUID) ([]entity.MedicalRecord, error)
	findByDoctorIDFn   func(ctx context.Context, doctorID uuid.UUID) ([]entity.MedicalRecord, error)
	updateFn           func(ctx context.Context, record *entity.MedicalRecord) error
	deleteFn           func(ctx context.Context, id uuid.UUID) error
}

var _ repository.MedicalRecordRepository = (*mockMedicalRecordRepo)(nil)

func (m *mockMedicalRecordRepo) Create(ctx context.Context, record *entity.MedicalRecord) error {
	if m.createFn != nil {
		return m.createFn(ctx, record)
	}
	return nil
}

func (m *mockMedicalRecordRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockMedicalRecordRepo) FindByIDDetailed(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error) {
	if m.findByIDDetailedFn != nil {
		return m.findByIDDetailedFn(ctx, id)
	}
	return nil, nil
}

func (m *mockMedicalRecordRepo) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.MedicalRecord, error) {
	if m.findByPatientIDFn != nil {
		return m.findByPatientIDFn(ctx, patientID)
	}
	return nil, nil
}

func (m *mockMedicalRecordRepo) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.MedicalRecord, error) {
	if m.findByDoctorIDFn != nil {
		return m.findByDoctorIDFn(ctx, doctorID)
	}
	return nil, nil
}

func (m *mockMedicalRecordRepo) Update(ctx context.Context, record *entity.MedicalRecord) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, record)
	}
	return nil
}

func (m *mockMedicalRecordRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockPrescriptionRepo struct {
	createFn           func(ctx context.Context, prescription *entity.Prescription) error
	findByIDFn         func(ctx context.Context, id uuid.UUID) (*entity.Prescription, error)
	findByIDDetailedFn func(ctx context.Context, id uuid.UUID) (*entity.Prescription, error)
	findByPatientIDFn  func(ctx context.Context, patientID uuid.UUID) ([]entity.Prescription, error)
	findByDoctorIDFn   func(ctx context.Context, doctorID uuid.UUID) ([]entity.Prescription, error)
	updateFn           func(ctx context.Context, prescription *entity.Prescription) error
	deleteFn           func(ctx context.Context, id uuid.UUID) error
}

var _ repository.PrescriptionRepository = (*mockPrescriptionRepo)(nil)

func (m *mockPrescriptionRepo) Create(ctx context.Context, prescription *entity.Prescription) error {
	if m.createFn != nil {
		return m.createFn(ctx, prescription)
	}
	return nil
}

func (m *mockPrescriptionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPrescriptionRepo) FindByIDDetailed(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	if m.findByIDDetailedFn != nil {
		return m.findByIDDetailedFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPrescriptionRepo) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Prescription, error) {
	if m.findByPatientIDFn != nil {
		return m.findByPatientIDFn(ctx, patientID)
	}
	return nil, nil
}

func (m *mockPrescriptionRepo) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Prescription, error) {
	if m.findByDoctorIDFn != nil {
		return m.findByDoctorIDFn(ctx, doctorID)
	}
	return nil, nil
}

func (m *mockPrescriptionRepo) Update(ctx context.Context, prescription *entity.Prescription) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, prescription)
	}
	return nil
}

func (m *mockPrescriptionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockAppointmentRepo struct {
	createFn          func(ctx context.Context, appointment *entity.Appointment) error
	findByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	findByPatientIDFn func(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error)
	findByDoctorIDFn  func(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error)
	updateFn          func(ctx context.Context, appointment *entity.Appointment) error
	deleteFn          func(ctx context.Context, id uuid.UUID) error
}

var _ repository.AppointmentRepository = (*mockAppointmentRepo)(nil)

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	if m.createFn != nil {
		return m.createFn(ctx, appointment)
	}
	return nil
}

func (m *mockAppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	if m.findByPatientIDFn != nil {
		return m.findByPatientIDFn(ctx, patientID)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error) {
	if m.findByDoctorIDFn != nil {
		return m.findByDoctorIDFn(ctx, doctorID)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) Update(ctx context.Context, appointment *entity.Appointment) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, appointment)
	}
	return nil
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockTestResultRepo struct {
	createFn func(ctx context.Context, testResult *entity.TestResult) error
}

var _ repository.TestResultRepository = (*mockTestResultRepo)(nil)

func (m *mockTestResultRepo) Create(ctx context.Context, testResult *entity.TestResult) error {
	if m.createFn != nil {
		return m.createFn(ctx, testResult)
	}
	return nil
}

type mockAuditLogRepo struct {
	createFn       func(ctx context.Context, auditLog *entity.AuditLog) error
	findByUserIDFn func(ctx context.Context, userID uuid.UUID, limit int) ([]entity.AuditLog, error)
}

var _ repository.AuditLogRepository = (*mockAuditLogRepo)(nil)

func (m *mockAuditLogRepo) Create(ctx context.Context, auditLog *entity.AuditLog) error {
	if m.createFn != nil {
		return m.createFn(ctx, auditLog)
	}
	return nil
}

func (m *mockAuditLogRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]entity.AuditLog, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID, limit)
	}
	return nil, nil
}

// mockSessionService records registered and revoked sessions in memory.
type mockSessionService struct {
	registered map[string]bool
	revokedAll []uuid.UUID
}

var _ service.SessionService = (*mockSessionService)(nil)

func newMockSessionService() *mockSessionService {
	return &mockSessionService{registered: make(map[string]bool)}
}

func (m *mockSessionService) key(userID uuid.UUID, tokenID string) string {
	return userID.String() + ":" + tokenID
}

func (m *mockSessionService) Register(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	m.registered[m.key(userID, tokenID)] = true
	return nil
}

func (m *mockSessionService) IsActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	return m.registered[m.key(userID, tokenID)], nil
}

func (m *mockSessionService) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	delete(m.registered, m.key(userID, tokenID))
	return nil
}

func (m *mockSessionService) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	m.revokedAll = append(m.revokedAll, userID)
	prefix := userID.String() + ":"
	for k := range m.registered {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(m.registered, k)
		}
	}
	return nil
}

// mockAuditService captures recorded actions for assertions.
type mockAuditService struct {
	actions []string
}

var _ service.AuditService = (*mockAuditService)(nil)

func (m *mockAuditService) Record(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, detail entity.JSON) {
	m.actions = append(m.actions, action)
}
