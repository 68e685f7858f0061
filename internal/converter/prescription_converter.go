package converter

import (
	"time"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
)

func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	response := &dto.PrescriptionResponse{
		ID:              prescription.ID,
		PatientID:       prescription.PatientID,
		DoctorID:        prescription.DoctorID,
		MedicalRecordID: prescription.MedicalRecordID,
		Medication:      prescription.Medication,
		Dosage:          prescription.Dosage,
		Frequency:       prescription.Frequency,
		Duration:        prescription.Duration,
		Instructions:    prescription.Instructions,
		FileURL:         prescription.FileURL,
		CreatedAt:       prescription.CreatedAt.Format(time.RFC3339),
	}

	if prescription.Patient.ID != uuid.Nil {
		response.Patient = &dto.PatientSummary{
			ID:        prescription.Patient.ID,
			FirstName: prescription.Patient.FirstName,
			LastName:  prescription.Patient.LastName,
		}
	}

	if prescription.Doctor.ID != uuid.Nil {
		response.Doctor = &dto.DoctorSummary{
			ID:             prescription.Doctor.ID,
			FirstName:      prescription.Doctor.FirstName,
			LastName:       prescription.Doctor.LastName,
			Specialization: prescription.Doctor.Specialization,
		}
	}

	return response
}

func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for i := range prescriptions {
		responses = append(responses, *PrescriptionToResponse(&prescriptions[i]))
	}
	return responses
}
