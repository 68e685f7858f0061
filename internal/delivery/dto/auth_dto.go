package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterPatientRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	FirstName   string  `json:"first_name" validate:"required,min=1"`
	LastName    string  `json:"last_name" validate:"required,min=1"`
	DateOfBirth string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Phone       string  `json:"phone" validate:"required,min=10,max=20"`
	Address     string  `json:"address" validate:"required"`
	BloodGroup  *string `json:"blood_group" validate:"omitempty,max=5"`
}

type RegisterDoctorRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FirstName      string `json:"first_name" validate:"required,min=1"`
	LastName       string `json:"last_name" validate:"required,min=1"`
	Specialization string `json:"specialization" validate:"required"`
	LicenseNumber  string `json:"license_number" validate:"required"`
	Phone          string `json:"phone" validate:"required,min=10,max=20"`
	Department     string `json:"department" validate:"required"`
}

// ChangePasswordRequest enforces the password policy on the new password:
// at least 8 characters with upper, lower, digit and special character.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,containsany=ABCDEFGHIJKLMNOPQRSTUVWXYZ,containsany=abcdefghijklmnopqrstuvwxyz,containsany=0123456789,containsany=@$!%*?&#"`
}

// Response DTOs

// IdentityResponse is the session identity: profile_id is the patient or
// doctor profile id depending on role.
type IdentityResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ProfileID uuid.UUID `json:"profile_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

type AuthResponse struct {
	User  IdentityResponse `json:"user"`
	Token string           `json:"token"`
}
