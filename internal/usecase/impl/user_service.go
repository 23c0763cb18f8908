package impl

import (
	"context"
	"log/slog"
	"strconv"

	"crowdmap/internal/domain/entity"
	domainerrors "crowdmap/internal/domain/errors"
	"crowdmap/internal/domain/repository"
	"crowdmap/internal/domain/service"
	"crowdmap/internal/errors"
	"crowdmap/internal/usecase"
	"crowdmap/internal/validation"
)

// GetUser retrieves a user by id.
func (srv *crowdMapService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, srv.internalError(ctx, err, "GetUser", slog.Int64("user_id", id))
	}

	return user, nil
}

// GetUserByUsername retrieves a user by exact username.
func (srv *crowdMapService) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, srv.internalError(ctx, err, "GetUserByUsername", slog.String("username", username))
	}

	return user, nil
}

// CreateUser hashes the password and stores a new user.
func (srv *crowdMapService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}
	// The tag limit counts characters; the hasher limit counts bytes.
	if len(input.Password) > service.MaxPasswordBytes {
		return nil, validation.Invalid("password", "max", strconv.Itoa(service.MaxPasswordBytes))
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).ErrorContext(ctx, "Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		Username:    input.Username,
		Password:    hashed,
		DisplayName: input.DisplayName,
		Initials:    input.Initials,
	}
	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, domainerrors.ErrUsernameTaken
		}

		return nil, srv.internalError(ctx, err, "CreateUser", slog.String("username", input.Username))
	}

	return user, nil
}
