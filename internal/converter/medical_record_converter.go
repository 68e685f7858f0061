package converter

import (
	"time"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicalRecordToResponse converts a MedicalRecord entity to its response
// DTO. Associated patient/doctor/test-result data is included only when
// preloaded.
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	response := &dto.MedicalRecordResponse{
		ID:            record.ID,
		PatientID:     record.PatientID,
		DoctorID:      record.DoctorID,
		AppointmentID: record.AppointmentID,
		Diagnosis:     record.Diagnosis,
		Symptoms:      record.Symptoms,
		Notes:         record.Notes,
		CreatedAt:     record.CreatedAt.Format(time.RFC3339),
	}

	if record.Patient.ID != uuid.Nil {
		response.Patient = &dto.PatientSummary{
			ID:        record.Patient.ID,
			FirstName: record.Patient.FirstName,
			LastName:  record.Patient.LastName,
		}
	}

	if record.Doctor.ID != uuid.Nil {
		response.Doctor = &dto.DoctorSummary{
			ID:             record.Doctor.ID,
			FirstName:      record.Doctor.FirstName,
			LastName:       record.Doctor.LastName,
			Specialization: record.Doctor.Specialization,
		}
	}

	for i := range record.TestResults {
		response.TestResults = append(response.TestResults, *TestResultToResponse(&record.TestResults[i]))
	}

	for i := range record.Prescriptions {
		response.Prescriptions = append(response.Prescriptions, *PrescriptionToResponse(&record.Prescriptions[i]))
	}

	return response
}

func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *MedicalRecordToResponse(&records[i]))
	}
	return responses
}

func TestResultToResponse(testResult *entity.TestResult) *dto.TestResultResponse {
	if testResult == nil {
		return nil
	}
	return &dto.TestResultResponse{
		ID:          testResult.ID,
		TestName:    testResult.TestName,
		TestDate:    testResult.TestDate.Format("2006-01-02"),
		ResultValue: testResult.ResultValue,
		FileURL:     testResult.FileURL,
		Notes:       testResult.Notes,
	}
}
