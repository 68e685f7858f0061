package dto

import (
	"github.com/google/uuid"
)

// CreateMedicalRecordRequest: the authoring doctor id is never part of the
// payload; it is always taken from the caller's session.
type CreateMedicalRecordRequest struct {
	PatientID     string                  `json:"patient_id" validate:"required,uuid"`
	AppointmentID *string                 `json:"appointment_id" validate:"omitempty,uuid"`
	Diagnosis     string                  `json:"diagnosis" validate:"required,min=1"`
	Symptoms      string                  `json:"symptoms" validate:"required,min=1"`
	Notes         string                  `json:"notes" validate:"omitempty"`
	TestResult    *CreateTestResultInline `json:"test_result" validate:"omitempty"`
}

// CreateTestResultInline attaches an initial test result while creating a
// record, mirroring the file-attachment flow of the record form.
type CreateTestResultInline struct {
	TestName    string  `json:"test_name" validate:"required,min=1"`
	TestDate    string  `json:"test_date" validate:"required,datetime=2006-01-02"`
	ResultValue string  `json:"result_value" validate:"required,min=1"`
	FileURL     *string `json:"file_url" validate:"omitempty"`
	Notes       string  `json:"notes" validate:"omitempty"`
}

type UpdateMedicalRecordRequest struct {
	Diagnosis *string `json:"diagnosis" validate:"omitempty,min=1"`
	Symptoms  *string `json:"symptoms" validate:"omitempty,min=1"`
	Notes     *string `json:"notes" validate:"omitempty"`
}

type AddTestResultRequest struct {
	TestName    string  `json:"test_name" validate:"required,min=1"`
	TestDate    string  `json:"test_date" validate:"required,datetime=2006-01-02"`
	ResultValue string  `json:"result_value" validate:"required,min=1"`
	FileURL     *string `json:"file_url" validate:"omitempty"`
	Notes       string  `json:"notes" validate:"omitempty"`
}

type TestResultResponse struct {
	ID          uuid.UUID `json:"id"`
	TestName    string    `json:"test_name"`
	TestDate    string    `json:"test_date"`
	ResultValue string    `json:"result_value"`
	FileURL     *string   `json:"file_url,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

type MedicalRecordResponse struct {
	ID            uuid.UUID              `json:"id"`
	PatientID     uuid.UUID              `json:"patient_id"`
	DoctorID      uuid.UUID              `json:"doctor_id"`
	AppointmentID *uuid.UUID             `json:"appointment_id,omitempty"`
	Diagnosis     string                 `json:"diagnosis"`
	Symptoms      string                 `json:"symptoms"`
	Notes         string                 `json:"notes,omitempty"`
	Patient       *PatientSummary        `json:"patient,omitempty"`
	Doctor        *DoctorSummary         `json:"doctor,omitempty"`
	TestResults   []TestResultResponse   `json:"test_results,omitempty"`
	Prescriptions []PrescriptionResponse `json:"prescriptions,omitempty"`
	CreatedAt     string                 `json:"created_at"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}
