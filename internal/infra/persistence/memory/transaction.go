package memory

import (
	"context"

	"crowdmap/internal/domain/repository"
	"crowdmap/internal/errors"
)

// transactionManager serialises transactions on the store's write lock and
// undoes journaled writes when the callback fails.
type transactionManager struct {
	store *Store
}

// NewTransactionManager is the constructor for the in-memory transaction manager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

type repositoryFactory struct {
	sc scope
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{scope: f.sc}
}

func (f *repositoryFactory) NewLocationRepository() repository.LocationRepository {
	return &locationRepository{scope: f.sc}
}

func (f *repositoryFactory) NewCrowdLevelRepository() repository.CrowdLevelRepository {
	return &crowdLevelRepository{scope: f.sc}
}

func (f *repositoryFactory) NewCheckInRepository() repository.CheckInRepository {
	return &checkInRepository{scope: f.sc}
}

func (f *repositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return &reviewRepository{scope: f.sc}
}

func (f *repositoryFactory) NewFavoriteRepository() repository.FavoriteRepository {
	return &favoriteRepository{scope: f.sc}
}

// Execute runs fn while holding the store's write lock. Repositories handed to fn
// must not be used after it returns.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	tx := &txState{}
	defer func() {
		if r := recover(); r != nil {
			tx.rollback()
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{sc: scope{store: tm.store, tx: tx}}); err != nil {
		tx.rollback()

		return err
	}

	return nil
}
