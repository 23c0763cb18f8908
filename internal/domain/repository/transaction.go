package repository

import "context"

// TransactionManager defines the interface for managing storage transactions.
// This allows the use case layer to group writes without depending on a specific backend.
type TransactionManager interface {
	// Execute runs a function within a single transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function must use the factory's repositories.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewLocationRepository() LocationRepository
	NewCrowdLevelRepository() CrowdLevelRepository
	NewCheckInRepository() CheckInRepository
	NewReviewRepository() ReviewRepository
	NewFavoriteRepository() FavoriteRepository
}
