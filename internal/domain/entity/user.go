package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is the user's system role. Every user owns exactly one profile of
// the matching kind; users are never role-switched.
type Role string

const (
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
)

// User represents the centralized authentication table
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;index" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:UserID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:UserID" json:"doctor,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Profile returns the role-specific profile id and display name.
// The boolean is false when the 1:1 profile row is missing, which is a
// data-integrity fault.
func (u *User) Profile() (profileID uuid.UUID, firstName, lastName string, ok bool) {
	switch u.Role {
	case RolePatient:
		if u.Patient == nil {
			return uuid.Nil, "", "", false
		}
		return u.Patient.ID, u.Patient.FirstName, u.Patient.LastName, true
	case RoleDoctor:
		if u.Doctor == nil {
			return uuid.Nil, "", "", false
		}
		return u.Doctor.ID, u.Doctor.FirstName, u.Doctor.LastName, true
	}
	return uuid.Nil, "", "", false
}
