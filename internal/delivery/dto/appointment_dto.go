package dto

import (
	"github.com/google/uuid"
)

// CreateAppointmentRequest: a patient caller books with the given doctor
// and PatientID is ignored; a doctor caller schedules for the given
// patient and DoctorID is ignored. The caller's own side always comes
// from the session.
type CreateAppointmentRequest struct {
	PatientID       *string `json:"patient_id" validate:"omitempty,uuid"`
	DoctorID        *string `json:"doctor_id" validate:"omitempty,uuid"`
	AppointmentDate string  `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	AppointmentTime string  `json:"appointment_time" validate:"required"`
	Reason          string  `json:"reason" validate:"required,min=1"`
	Notes           string  `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=SCHEDULED COMPLETED CANCELLED"`
	Notes  *string `json:"notes" validate:"omitempty"`
}

type AppointmentResponse struct {
	ID              uuid.UUID       `json:"id"`
	PatientID       uuid.UUID       `json:"patient_id"`
	DoctorID        uuid.UUID       `json:"doctor_id"`
	AppointmentDate string          `json:"appointment_date"`
	AppointmentTime string          `json:"appointment_time"`
	Status          string          `json:"status"`
	Reason          string          `json:"reason"`
	Notes           string          `json:"notes,omitempty"`
	Patient         *PatientSummary `json:"patient,omitempty"`
	Doctor          *DoctorSummary  `json:"doctor,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
