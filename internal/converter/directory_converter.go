package converter

import (
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
)

func PatientDirectoryToResponse(entries []entity.PatientDirectoryEntry) *dto.PatientDirectoryResponse {
	items := make([]dto.PatientDirectoryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.PatientDirectoryItem{
			ID:                 e.ID,
			FirstName:          e.FirstName,
			LastName:           e.LastName,
			DateOfBirth:        e.DateOfBirth.Format("2006-01-02"),
			Phone:              e.Phone,
			Address:            e.Address,
			BloodGroup:         e.BloodGroup,
			Email:              e.Email,
			AppointmentCount:   e.AppointmentCount,
			MedicalRecordCount: e.MedicalRecordCount,
		})
	}
	return &dto.PatientDirectoryResponse{
		Patients: items,
		Total:    len(items),
	}
}

func DoctorDirectoryToResponse(doctors []entity.Doctor) *dto.DoctorDirectoryResponse {
	items := make([]dto.DoctorDirectoryItem, 0, len(doctors))
	for _, d := range doctors {
		items = append(items, dto.DoctorDirectoryItem{
			ID:             d.ID,
			FirstName:      d.FirstName,
			LastName:       d.LastName,
			Specialization: d.Specialization,
			Department:     d.Department,
		})
	}
	return &dto.DoctorDirectoryResponse{
		Doctors: items,
		Total:   len(items),
	}
}
