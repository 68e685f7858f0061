package entity

import (
	"time"

	"github.com/google/uuid"
)

// TestResult is attached to a medical record. FileURL is an opaque
// reference; file storage itself is outside this service.
type TestResult struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	MedicalRecordID uuid.UUID `gorm:"type:uuid;not null;index" json:"medical_record_id"`
	TestName        string    `gorm:"type:varchar(255);not null" json:"test_name"`
	TestDate        time.Time `gorm:"type:date;not null" json:"test_date"`
	ResultValue     string    `gorm:"type:text;not null" json:"result_value"`
	FileURL         *string   `gorm:"type:text" json:"file_url,omitempty"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	MedicalRecord MedicalRecord `gorm:"foreignKey:MedicalRecordID" json:"medical_record,omitempty"`
}

func (TestResult) TableName() string {
	return "test_results"
}
