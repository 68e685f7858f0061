package dto

import (
	"github.com/google/uuid"
)

type CreatePrescriptionRequest struct {
	PatientID       string  `json:"patient_id" validate:"required,uuid"`
	MedicalRecordID *string `json:"medical_record_id" validate:"omitempty,uuid"`
	Medication      string  `json:"medication" validate:"required,min=1"`
	Dosage          string  `json:"dosage" validate:"required,min=1"`
	Frequency       string  `json:"frequency" validate:"required,min=1"`
	Duration        string  `json:"duration" validate:"required,min=1"`
	Instructions    string  `json:"instructions" validate:"omitempty"`
	FileURL         *string `json:"file_url" validate:"omitempty"`
}

type UpdatePrescriptionRequest struct {
	Medication   *string `json:"medication" validate:"omitempty,min=1"`
	Dosage       *string `json:"dosage" validate:"omitempty,min=1"`
	Frequency    *string `json:"frequency" validate:"omitempty,min=1"`
	Duration     *string `json:"duration" validate:"omitempty,min=1"`
	Instructions *string `json:"instructions" validate:"omitempty"`
}

type PrescriptionResponse struct {
	ID              uuid.UUID       `json:"id"`
	PatientID       uuid.UUID       `json:"patient_id"`
	DoctorID        uuid.UUID       `json:"doctor_id"`
	MedicalRecordID *uuid.UUID      `json:"medical_record_id,omitempty"`
	Medication      string          `json:"medication"`
	Dosage          string          `json:"dosage"`
	Frequency       string          `json:"frequency"`
	Duration        string          `json:"duration"`
	Instructions    string          `json:"instructions,omitempty"`
	FileURL         *string         `json:"file_url,omitempty"`
	Patient         *PatientSummary `json:"patient,omitempty"`
	Doctor          *DoctorSummary  `json:"doctor,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
