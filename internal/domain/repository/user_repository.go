// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"crowdmap/internal/domain/entity"
	"crowdmap/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when creating a user whose username already exists.
	ErrUsernameTaken = errors.New("username already exists")
)

// UserRepository defines the interface for user-related persistence operations.
type UserRepository interface {
	// CreateUser assigns the next user id and persists the user.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by id.
	FindUserByID(ctx context.Context, id int64) (*entity.User, error)

	// FindUserByUsername retrieves a user by exact username.
	FindUserByUsername(ctx context.Context, username string) (*entity.User, error)
}
