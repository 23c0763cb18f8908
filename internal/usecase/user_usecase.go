// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"crowdmap/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a user.
// Password is plaintext here and is hashed before it is stored.
type CreateUserInput struct {
	Username    string  `json:"username" validate:"required,max=255"`
	Password    string  `json:"password" validate:"required,max=72"`
	DisplayName *string `json:"displayName" validate:"omitempty,max=255"`
	Initials    *string `json:"initials" validate:"omitempty,max=16"`
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	GetUser(ctx context.Context, id int64) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
}
