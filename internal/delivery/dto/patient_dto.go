package dto

import (
	"github.com/google/uuid"
)

// CreatePatientByDoctorRequest carries no password: the server generates
// one and returns it exactly once in ProvisionedAccountResponse.
type CreatePatientByDoctorRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	FirstName   string  `json:"first_name" validate:"required,min=1"`
	LastName    string  `json:"last_name" validate:"required,min=1"`
	DateOfBirth string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Phone       string  `json:"phone" validate:"required,min=10,max=20"`
	Address     string  `json:"address" validate:"required"`
	BloodGroup  *string `json:"blood_group" validate:"omitempty,max=5"`
}

type ProvisionedAccountResponse struct {
	User IdentityResponse `json:"user"`
	// Password is the generated plaintext, disclosed only here. The
	// system stores nothing but its hash.
	Password string `json:"password"`
}

type PatientDirectoryItem struct {
	ID                 uuid.UUID `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	DateOfBirth        string    `json:"date_of_birth"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	BloodGroup         *string   `json:"blood_group,omitempty"`
	Email              string    `json:"email"`
	AppointmentCount   int64     `json:"appointment_count"`
	MedicalRecordCount int64     `json:"medical_record_count"`
}

type PatientDirectoryResponse struct {
	Patients []PatientDirectoryItem `json:"patients"`
	Total    int                    `json:"total"`
}

type PatientSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}
