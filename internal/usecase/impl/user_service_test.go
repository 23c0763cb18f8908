package impl

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainerrors "crowdmap/internal/domain/errors"
	"crowdmap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrowdMapService_CreateUser(t *testing.T) {
	f := newTestFixture(t, newTestConfig())
	ctx := context.Background()

	user, err := f.srv.CreateUser(ctx, &usecase.CreateUserInput{
		Username:    "john.doe",
		Password:    "password123",
		DisplayName: ptr("John Doe"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "hashed:password123", user.Password)

	found, err := f.srv.GetUserByUsername(ctx, "john.doe")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	second, err := f.srv.CreateUser(ctx, &usecase.CreateUserInput{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestCrowdMapService_CreateUser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, f *testFixture)
		input   *usecase.CreateUserInput
		wantErr error
	}{
		{
			name:    "missing username",
			input:   &usecase.CreateUserInput{Password: "secret"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "missing password",
			input:   &usecase.CreateUserInput{Username: "bob"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "password over hasher byte limit",
			input:   &usecase.CreateUserInput{Username: "bob", Password: strings.Repeat("é", 40)},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "duplicate username",
			setup: func(t *testing.T, f *testFixture) {
				_, err := f.srv.CreateUser(context.Background(), &usecase.CreateUserInput{Username: "bob", Password: "secret"})
				require.NoError(t, err)
			},
			input:   &usecase.CreateUserInput{Username: "bob", Password: "other"},
			wantErr: domainerrors.ErrUsernameTaken,
		},
		{
			name: "hasher failure",
			setup: func(_ *testing.T, f *testFixture) {
				f.srv.hasher = stubHasher{err: errors.New("boom")}
			},
			input:   &usecase.CreateUserInput{Username: "bob", Password: "secret"},
			wantErr: domainerrors.ErrPasswordHashFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFixture(t, newTestConfig())
			if tt.setup != nil {
				tt.setup(t, f)
			}

			user, err := f.srv.CreateUser(context.Background(), tt.input)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCrowdMapService_GetUser(t *testing.T) {
	f := newTestFixture(t, newTestConfig())
	ctx := context.Background()

	_, err := f.srv.GetUser(ctx, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)

	_, err = f.srv.GetUser(ctx, 42)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	_, err = f.srv.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
