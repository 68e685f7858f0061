package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord is authored by a doctor for a patient, optionally linked
// to the appointment it resulted from. Only the authoring doctor may
// mutate or delete it; the subject patient may read it.
type MedicalRecord struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AppointmentID *uuid.UUID `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	Diagnosis     string     `gorm:"type:text;not null" json:"diagnosis"`
	Symptoms      string     `gorm:"type:text;not null" json:"symptoms"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient       Patient        `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor        Doctor         `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Appointment   *Appointment   `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Prescriptions []Prescription `gorm:"foreignKey:MedicalRecordID" json:"prescriptions,omitempty"`
	TestResults   []TestResult   `gorm:"foreignKey:MedicalRecordID" json:"test_results,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
