package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents patient-specific profile data, owned 1:1 by a User.
// Its ID (not the user id) is the subject id on appointments, medical
// records, prescriptions and test results.
type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(100);not null" json:"last_name"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Phone       string    `gorm:"type:varchar(20);not null" json:"phone"`
	Address     string    `gorm:"type:text;not null" json:"address"`
	BloodGroup  *string   `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User           User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments   []Appointment   `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	MedicalRecords []MedicalRecord `gorm:"foreignKey:PatientID" json:"medical_records,omitempty"`
	Prescriptions  []Prescription  `gorm:"foreignKey:PatientID" json:"prescriptions,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
