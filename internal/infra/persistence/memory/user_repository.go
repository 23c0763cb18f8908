package memory

import (
	"context"

	"crowdmap/internal/domain/entity"
	"crowdmap/internal/domain/repository"
)

type userRepository struct {
	scope
}

// NewUserRepository is the constructor for the in-memory user repository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{scope: scope{store: store}}
}

func (repo *userRepository) CreateUser(_ context.Context, user *entity.User) error {
	defer repo.lock()()

	s := repo.store
	if _, exists := s.usernames[user.Username]; exists {
		return repository.ErrUsernameTaken
	}

	s.seq.user++
	user.ID = s.seq.user
	s.users[user.ID] = cloneUser(user)
	s.usernames[user.Username] = user.ID

	id, username := user.ID, user.Username
	repo.tx.record(func() {
		delete(s.users, id)
		delete(s.usernames, username)
	})

	return nil
}

func (repo *userRepository) FindUserByID(_ context.Context, id int64) (*entity.User, error) {
	defer repo.rlock()()

	user, ok := repo.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (repo *userRepository) FindUserByUsername(_ context.Context, username string) (*entity.User, error) {
	defer repo.rlock()()

	id, ok := repo.store.usernames[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(repo.store.users[id]), nil
}
