package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus has no enforced transition graph; it is a plain label.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "SCHEDULED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

// Appointment links one patient and one doctor for a dated time slot.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:varchar(20);not null" json:"appointment_time"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED'" json:"status"`
	Reason          string            `gorm:"type:text;not null" json:"reason"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
