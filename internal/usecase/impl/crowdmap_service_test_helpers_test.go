package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"crowdmap/config"
	"crowdmap/internal/domain/repository"
	"crowdmap/internal/domain/service"
	"crowdmap/internal/infra/persistence/memory"

	"github.com/stretchr/testify/mock"
)

var testClock = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Storage: &config.StorageConfig{Driver: "memory"},
		Crowd: &config.CrowdConfig{
			DefaultHistoryLimit: 24,
			MaxHistoryLimit:     100,
		},
		Locations: &config.LocationsConfig{
			DedupToleranceDegrees: 0.0001,
			DefaultImageURL:       "https://example.com/place.jpg",
			DefaultNearbyRadius:   1000,
			MaxNearbyRadius:       5000,
		},
	}
}

// MockEventPublisher is a testify mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishCheckInEvent(ctx context.Context, event *service.CheckInEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// stubHasher prefixes passwords instead of running bcrypt.
type stubHasher struct {
	err error
}

func (h stubHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}

	return "hashed:" + password, nil
}

func (h stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type testFixture struct {
	srv       *crowdMapService
	store     *memory.Store
	publisher *MockEventPublisher
	clock     time.Time
}

func newTestFixture(t *testing.T, cfg *config.Config) *testFixture {
	t.Helper()

	store := memory.NewStore(memory.WithGridCellSize(cfg.Locations.DedupToleranceDegrees))
	publisher := &MockEventPublisher{}
	t.Cleanup(func() { publisher.AssertExpectations(t) })

	params := memoryParams(store)
	params.Hasher = stubHasher{}
	params.Publisher = publisher
	params.Config = cfg
	params.Logger = newDiscardLogger()

	fixture := &testFixture{
		srv:       newCrowdMapService(params),
		store:     store,
		publisher: publisher,
		clock:     testClock,
	}
	fixture.srv.now = func() time.Time { return fixture.clock }

	return fixture
}

func memoryParams(store *memory.Store) CrowdMapServiceParams {
	return CrowdMapServiceParams{
		TxManager:      memory.NewTransactionManager(store),
		UserRepo:       memory.NewUserRepository(store),
		LocationRepo:   memory.NewLocationRepository(store),
		CrowdLevelRepo: memory.NewCrowdLevelRepository(store),
		CheckInRepo:    memory.NewCheckInRepository(store),
		ReviewRepo:     memory.NewReviewRepository(store),
		FavoriteRepo:   memory.NewFavoriteRepository(store),
	}
}

// failingTxManager rejects every transaction.
type failingTxManager struct {
	err error
}

func (m failingTxManager) Execute(context.Context, func(repository.RepositoryFactory) error) error {
	return m.err
}
