package repository

import (
	"context"
	"errors"

	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindDirectory(ctx context.Context) ([]entity.PatientDirectoryEntry, error) {
	var entries []entity.PatientDirectoryEntry
	err := r.db.WithContext(ctx).
		Model(&entity.Patient{}).
		Select(`
			patients.id,
			patients.first_name,
			patients.last_name,
			patients.date_of_birth,
			patients.phone,
			patients.address,
			patients.blood_group,
			patients.created_at,
			users.email,
			COUNT(DISTINCT appointments.id) AS appointment_count,
			COUNT(DISTINCT medical_records.id) AS medical_record_count
		`).
		Joins("JOIN users ON users.id = patients.user_id").
		Joins("LEFT JOIN appointments ON appointments.patient_id = patients.id").
		Joins("LEFT JOIN medical_records ON medical_records.patient_id = patients.id").
		Group("patients.id, users.email").
		Order("patients.created_at DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
