package converter

import (
	"time"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: appointment.AppointmentTime,
		Status:          string(appointment.Status),
		Reason:          appointment.Reason,
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt.Format(time.RFC3339),
	}

	if appointment.Patient.ID != uuid.Nil {
		response.Patient = &dto.PatientSummary{
			ID:        appointment.Patient.ID,
			FirstName: appointment.Patient.FirstName,
			LastName:  appointment.Patient.LastName,
		}
	}

	if appointment.Doctor.ID != uuid.Nil {
		response.Doctor = &dto.DoctorSummary{
			ID:             appointment.Doctor.ID,
			FirstName:      appointment.Doctor.FirstName,
			LastName:       appointment.Doctor.LastName,
			Specialization: appointment.Doctor.Specialization,
		}
	}

	return response
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
