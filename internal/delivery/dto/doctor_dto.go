package dto

import (
	"github.com/google/uuid"
)

type CreateDoctorByDoctorRequest struct {
	Email          string `json:"email" validate:"required,email"`
	FirstName      string `json:"first_name" validate:"required,min=1"`
	LastName       string `json:"last_name" validate:"required,min=1"`
	Specialization string `json:"specialization" validate:"required"`
	LicenseNumber  string `json:"license_number" validate:"required"`
	Phone          string `json:"phone" validate:"required,min=10,max=20"`
	Department     string `json:"department" validate:"required"`
}

type DoctorSummary struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Specialization string    `json:"specialization"`
}

type DoctorDirectoryItem struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Specialization string    `json:"specialization"`
	Department     string    `json:"department"`
}

type DoctorDirectoryResponse struct {
	Doctors []DoctorDirectoryItem `json:"doctors"`
	Total   int                   `json:"total"`
}
