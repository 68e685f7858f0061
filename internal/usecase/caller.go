package usecase

import (
	"errors"

	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
)

// Caller is the authenticated identity acting on a usecase. ProfileID is
// the patient or doctor profile id matching Role, never the user id.
type Caller struct {
	UserID    uuid.UUID
	Role      entity.Role
	ProfileID uuid.UUID
}

func (c Caller) IsDoctor() bool {
	return c.Role == entity.RoleDoctor
}

func (c Caller) IsPatient() bool {
	return c.Role == entity.RolePatient
}

// ErrForbidden means the resource exists but the caller may not act on
// it. Existence is checked first, so a missing resource is reported as
// not-found rather than forbidden.
var ErrForbidden = errors.New("access denied")
