package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents doctor-specific profile data, owned 1:1 by a User.
type Doctor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FirstName      string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	LicenseNumber  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Phone          string    `gorm:"type:varchar(20);not null" json:"phone"`
	Department     string    `gorm:"type:varchar(100);not null" json:"department"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User           User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments   []Appointment   `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
	MedicalRecords []MedicalRecord `gorm:"foreignKey:DoctorID" json:"medical_records,omitempty"`
	Prescriptions  []Prescription  `gorm:"foreignKey:DoctorID" json:"prescriptions,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
