package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prescription carries the same ownership invariant as MedicalRecord:
// the authoring doctor mutates and deletes, the subject patient reads.
type Prescription struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	MedicalRecordID *uuid.UUID `gorm:"type:uuid;index" json:"medical_record_id,omitempty"`
	Medication      string     `gorm:"type:varchar(255);not null" json:"medication"`
	Dosage          string     `gorm:"type:varchar(100);not null" json:"dosage"`
	Frequency       string     `gorm:"type:varchar(100);not null" json:"frequency"`
	Duration        string     `gorm:"type:varchar(100);not null" json:"duration"`
	Instructions    string     `gorm:"type:text" json:"instructions,omitempty"`
	FileURL         *string    `gorm:"type:text" json:"file_url,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient       Patient        `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor        Doctor         `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	MedicalRecord *MedicalRecord `gorm:"foreignKey:MedicalRecordID" json:"medical_record,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
