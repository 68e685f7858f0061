package repository

import (
	"context"
	"errors"

	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).Where("license_number = ?", licenseNumber).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := r.db.WithContext(ctx).
		Order("last_name ASC, first_name ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}
