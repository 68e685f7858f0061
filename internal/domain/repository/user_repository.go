package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	// CreateWithProfile persists the user together with its role-specific
	// profile in a single association insert (one transaction).
	CreateWithProfile(ctx context.Context, user *entity.User) error
	// FindByEmail returns the user with both profile associations
	// preloaded, or nil when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}
