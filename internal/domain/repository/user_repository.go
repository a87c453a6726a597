package repository

import (
	"context"
	"errors"

	"agriatoo/internal/domain/entity"
)

// ErrUserNotFound is returned when no user record exists for the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user-record lookups in the
// document store. Seller records are created by the marketplace admin
// tooling, never by this service.
type UserRepository interface {
	// FindByID retrieves a user by the identity provider's subject ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
