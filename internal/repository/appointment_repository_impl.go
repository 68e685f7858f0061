package repository

import (
	"context"
	"errors"

	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{}).Error
}
