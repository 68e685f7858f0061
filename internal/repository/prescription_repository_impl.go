package repository

import (
	"context"
	"errors"

	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type prescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) domainRepo.PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *entity.Prescription) error {
	return r.db.WithContext(ctx).Create(prescription).Error
}

func (r *prescriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByIDDetailed(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Where("id = ?", id).
		First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) Update(ctx context.Context, prescription *entity.Prescription) error {
	return r.db.WithContext(ctx).Save(prescription).Error
}

func (r *prescriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Prescription{}).Error
}
