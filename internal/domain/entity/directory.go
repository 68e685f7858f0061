package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientDirectoryEntry is a domain-level projection for the doctor-facing
// patient directory. Used by the repository layer to avoid coupling with
// delivery DTOs.
type PatientDirectoryEntry struct {
	ID                 uuid.UUID
	FirstName          string
	LastName           string
	DateOfBirth        time.Time
	Phone              string
	Address            string
	BloodGroup         *string
	Email              string
	AppointmentCount   int64
	MedicalRecordCount int64
	CreatedAt          time.Time
}
