package usecase

import (
	"context"

	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// DirectoryUsecase serves the patient and doctor directories. The patient
// directory is doctor-only at the routing layer; the doctor directory is
// open to any authenticated user so patients can pick a doctor to book.
type DirectoryUsecase interface {
	ListPatients(ctx context.Context) (*dto.PatientDirectoryResponse, error)
	ListDoctors(ctx context.Context) (*dto.DoctorDirectoryResponse, error)
}

type directoryUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
}

func NewDirectoryUsecase(log *logrus.Logger, patientRepo repository.PatientRepository, doctorRepo repository.DoctorRepository) DirectoryUsecase {
	return &directoryUsecase{
		log:         log,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

func (u *directoryUsecase) ListPatients(ctx context.Context) (*dto.PatientDirectoryResponse, error) {
	entries, err := u.patientRepo.FindDirectory(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patient directory: %+v", err)
		return nil, err
	}
	return converter.PatientDirectoryToResponse(entries), nil
}

func (u *directoryUsecase) ListDoctors(ctx context.Context) (*dto.DoctorDirectoryResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorDirectoryToResponse(doctors), nil
}
