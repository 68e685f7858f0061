package repository

import (
	"context"
	"errors"

	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalRecordRepository struct {
	db *gorm.DB
}

func NewMedicalRecordRepository(db *gorm.DB) domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *entity.MedicalRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *medicalRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindByIDDetailed(ctx context.Context, id uuid.UUID) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Appointment").
		Preload("Prescriptions").
		Preload("TestResults").
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Appointment").
		Preload("TestResults").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("TestResults").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) Update(ctx context.Context, record *entity.MedicalRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *medicalRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.MedicalRecord{}).Error
}
