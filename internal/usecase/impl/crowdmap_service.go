// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"crowdmap/config"
	deliverycontext "crowdmap/internal/delivery/context"
	domainerrors "crowdmap/internal/domain/errors"
	"crowdmap/internal/domain/geo"
	"crowdmap/internal/domain/repository"
	"crowdmap/internal/domain/service"
	"crowdmap/internal/usecase"
	"crowdmap/internal/validation"

	"go.uber.org/fx"
)

// crowdMapService implements the CrowdMapUsecase interface.
type crowdMapService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	locationRepo   repository.LocationRepository
	crowdLevelRepo repository.CrowdLevelRepository
	checkInRepo    repository.CheckInRepository
	reviewRepo     repository.ReviewRepository
	favoriteRepo   repository.FavoriteRepository
	hasher         service.PasswordHasher
	publisher      service.EventPublisher
	validator      *validation.Validator
	settings       settings
	now            func() time.Time
	logger         *slog.Logger
}

type settings struct {
	defaultHistoryLimit int
	maxHistoryLimit     int
	dedupTolerance      float64
	defaultImageURL     string
	defaultNearbyRadius float64
	maxNearbyRadius     float64
	seedSampleData      bool
}

// CrowdMapServiceParams holds dependencies for the crowd map service, injected by Fx.
type CrowdMapServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	LocationRepo   repository.LocationRepository
	CrowdLevelRepo repository.CrowdLevelRepository
	CheckInRepo    repository.CheckInRepository
	ReviewRepo     repository.ReviewRepository
	FavoriteRepo   repository.FavoriteRepository
	Hasher         service.PasswordHasher
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// CrowdMapServiceOutput exposes the service under both interfaces it satisfies.
type CrowdMapServiceOutput struct {
	fx.Out

	Usecase usecase.CrowdMapUsecase
	Seeder  usecase.SampleDataSeeder
}

// NewCrowdMapService is the constructor for crowdMapService.
func NewCrowdMapService(params CrowdMapServiceParams) CrowdMapServiceOutput {
	srv := newCrowdMapService(params)

	return CrowdMapServiceOutput{Usecase: srv, Seeder: srv}
}

func newCrowdMapService(params CrowdMapServiceParams) *crowdMapService {
	return &crowdMapService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		locationRepo:   params.LocationRepo,
		crowdLevelRepo: params.CrowdLevelRepo,
		checkInRepo:    params.CheckInRepo,
		reviewRepo:     params.ReviewRepo,
		favoriteRepo:   params.FavoriteRepo,
		hasher:         params.Hasher,
		publisher:      params.Publisher,
		validator:      validation.New(),
		settings:       newSettings(params.Config),
		now:            time.Now,
		logger:         params.Logger,
	}
}

func newSettings(cfg *config.Config) settings {
	s := settings{
		defaultHistoryLimit: 24,
		maxHistoryLimit:     1000,
		dedupTolerance:      geo.DefaultTolerance,
		defaultNearbyRadius: 1000,
		maxNearbyRadius:     50000,
	}
	if cfg == nil {
		return s
	}

	if cfg.Crowd != nil {
		if cfg.Crowd.DefaultHistoryLimit > 0 {
			s.defaultHistoryLimit = cfg.Crowd.DefaultHistoryLimit
		}
		if cfg.Crowd.MaxHistoryLimit > 0 {
			s.maxHistoryLimit = cfg.Crowd.MaxHistoryLimit
		}
	}
	if cfg.Locations != nil {
		if cfg.Locations.DedupToleranceDegrees > 0 {
			s.dedupTolerance = cfg.Locations.DedupToleranceDegrees
		}
		s.defaultImageURL = cfg.Locations.DefaultImageURL
		if cfg.Locations.DefaultNearbyRadius > 0 {
			s.defaultNearbyRadius = cfg.Locations.DefaultNearbyRadius
		}
		if cfg.Locations.MaxNearbyRadius > 0 {
			s.maxNearbyRadius = cfg.Locations.MaxNearbyRadius
		}
	}
	if cfg.Storage != nil {
		s.seedSampleData = cfg.Storage.SeedSampleData
	}

	return s
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *crowdMapService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// internalError logs an unexpected failure once and hides it behind ErrInternalError.
func (srv *crowdMapService) internalError(ctx context.Context, err error, operation string, attrs ...any) error {
	args := append([]any{slog.String("operation", operation), slog.Any("error", err)}, attrs...)
	srv.log(ctx).ErrorContext(ctx, "Crowd map operation failed", args...)

	return domainerrors.ErrInternalError
}

func requireID(field string, id int64) error {
	if id <= 0 {
		return domainerrors.ErrInvalidID.WithDetails([]validation.FieldError{{Field: field, Rule: "gt", Param: "0"}})
	}

	return nil
}
