// Package persistence selects the storage backend and exposes its repositories to Fx.
package persistence

import (
	"log/slog"

	"crowdmap/config"
	"crowdmap/internal/domain/constants"
	"crowdmap/internal/domain/repository"
	"crowdmap/internal/errors"
	"crowdmap/internal/infra/persistence/memory"
	"crowdmap/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the dependencies of the storage backend
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the full repository set of one backend
type Repositories struct {
	fx.Out

	UserRepo       repository.UserRepository
	LocationRepo   repository.LocationRepository
	CrowdLevelRepo repository.CrowdLevelRepository
	CheckInRepo    repository.CheckInRepository
	ReviewRepo     repository.ReviewRepository
	FavoriteRepo   repository.FavoriteRepository
	TxManager      repository.TransactionManager
}

// NewRepositories builds the repositories of the configured storage driver
func NewRepositories(params Params) (Repositories, error) {
	driver := constants.StorageDriverMemory
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case constants.StorageDriverMemory:
		var opts []memory.Option
		if params.Config.Locations != nil {
			opts = append(opts, memory.WithGridCellSize(params.Config.Locations.DedupToleranceDegrees))
		}
		store := memory.NewStore(opts...)
		params.Logger.Info("Using in-memory storage")

		return Repositories{
			UserRepo:       memory.NewUserRepository(store),
			LocationRepo:   memory.NewLocationRepository(store),
			CrowdLevelRepo: memory.NewCrowdLevelRepository(store),
			CheckInRepo:    memory.NewCheckInRepository(store),
			ReviewRepo:     memory.NewReviewRepository(store),
			FavoriteRepo:   memory.NewFavoriteRepository(store),
			TxManager:      memory.NewTransactionManager(store),
		}, nil

	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL storage")

		return Repositories{
			UserRepo:       postgres.NewUserRepository(db),
			LocationRepo:   postgres.NewLocationRepository(db),
			CrowdLevelRepo: postgres.NewCrowdLevelRepository(db),
			CheckInRepo:    postgres.NewCheckInRepository(db),
			ReviewRepo:     postgres.NewReviewRepository(db),
			FavoriteRepo:   postgres.NewFavoriteRepository(db),
			TxManager:      postgres.NewTransactionManager(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}
