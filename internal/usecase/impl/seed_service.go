package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"crowdmap/internal/domain/crowd"
	"crowdmap/internal/domain/entity"
	"crowdmap/internal/domain/lifecycle"
	"crowdmap/internal/domain/repository"
	"crowdmap/internal/errors"
	"crowdmap/internal/usecase"

	"go.uber.org/fx"
)

const (
	sampleHistoryHours = 24
	samplePassword     = "password123"
)

type sampleUser struct {
	username    string
	displayName string
	initials    string
}

var sampleUsers = []sampleUser{
	{username: "john.doe", displayName: "John Doe", initials: "JD"},
	{username: "alice.smith", displayName: "Alice Smith", initials: "AS"},
}

func sampleLocations() []*entity.Location {
	return []*entity.Location{
		{
			Name:        "Skyline Café",
			Category:    "Coffee shop",
			Address:     "123 Coffee Street, Cityville",
			Description: ptr("A cozy café with a great view of the city skyline."),
			ImageURL:    ptr("https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300&q=80"),
			Latitude:    40.7128,
			Longitude:   -74.0060,
			Distance:    ptr(0.3),
			Icon:        "coffee",
		},
		{
			Name:        "Garden Park",
			Category:    "Park",
			Address:     "123 Park Avenue, Cityville",
			Description: ptr("A beautiful park with gardens and playgrounds."),
			ImageURL:    ptr("https://images.unsplash.com/photo-1527518120952-a02b3a8bf9c4?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300&q=80"),
			Latitude:    40.7200,
			Longitude:   -74.0000,
			Distance:    ptr(0.5),
			Icon:        "tree",
		},
		{
			Name:        "Central Mall",
			Category:    "Shopping",
			Address:     "456 Shopping Blvd, Cityville",
			Description: ptr("The largest shopping mall in the city with over 100 stores."),
			ImageURL:    ptr("https://images.unsplash.com/photo-1555396273-367ea4eb4db5?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300&q=80"),
			Latitude:    40.7150,
			Longitude:   -74.0080,
			Distance:    ptr(1.2),
			Icon:        "shopping-bag",
		},
	}
}

// Current sample per seeded location, in location order.
var sampleCurrentLevels = []struct {
	level      entity.Level
	percentage entity.Percentage
}{
	{level: entity.LevelLow, percentage: 35},
	{level: entity.LevelMedium, percentage: 65},
	{level: entity.LevelHigh, percentage: 85},
}

// SeedSampleData writes the demonstration catalog into an empty store in one transaction.
func (srv *crowdMapService) SeedSampleData(ctx context.Context) (bool, error) {
	if !srv.settings.seedSampleData {
		return false, nil
	}

	hashes := make([]string, len(sampleUsers))
	for i := range sampleUsers {
		hashed, err := srv.hasher.Hash(samplePassword)
		if err != nil {
			return false, errors.Wrap(err, "hash sample password")
		}
		hashes[i] = hashed
	}

	now := srv.now()
	seeded := false
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		locationRepo := txRepoFactory.NewLocationRepository()
		count, err := locationRepo.CountLocations(ctx)
		if err != nil {
			return errors.Wrap(err, "count locations")
		}
		if count > 0 {
			return nil
		}

		crowdLevelRepo := txRepoFactory.NewCrowdLevelRepository()
		for i, location := range sampleLocations() {
			if err := locationRepo.CreateLocation(ctx, location); err != nil {
				return errors.Wrapf(err, "create sample location %q", location.Name)
			}

			current := sampleCurrentLevels[i]
			waitTime := crowd.WaitTimeForLevel(current.level)
			if err := crowdLevelRepo.CreateCrowdLevel(ctx, &entity.CrowdLevel{
				LocationID: location.ID,
				Level:      current.level,
				Percentage: current.percentage,
				Timestamp:  now,
				WaitTime:   &waitTime,
			}); err != nil {
				return errors.Wrap(err, "create sample crowd level")
			}

			for hour := 1; hour <= sampleHistoryHours; hour++ {
				if err := crowdLevelRepo.CreateCrowdLevel(ctx, historySample(location.ID, now.Add(-time.Duration(hour)*time.Hour))); err != nil {
					return errors.Wrap(err, "create sample crowd history")
				}
			}
		}

		userRepo := txRepoFactory.NewUserRepository()
		userIDs := make([]int64, len(sampleUsers))
		for i, sample := range sampleUsers {
			user := &entity.User{
				Username:    sample.username,
				Password:    hashes[i],
				DisplayName: ptr(sample.displayName),
				Initials:    ptr(sample.initials),
			}
			if err := userRepo.CreateUser(ctx, user); err != nil {
				return errors.Wrapf(err, "create sample user %q", sample.username)
			}
			userIDs[i] = user.ID
		}

		parks, err := locationRepo.FindLocationsByCategory(ctx, "Park")
		if err != nil {
			return errors.Wrap(err, "find sample park")
		}
		if len(parks) == 0 {
			return errors.New("sample park missing after insert")
		}
		reviewRepo := txRepoFactory.NewReviewRepository()
		reviews := []*entity.Review{
			{
				UserID:     userIDs[0],
				LocationID: parks[0].ID,
				Content:    "Great park! It was moderately busy but still plenty of space to relax. The playground area was more crowded though.",
				Timestamp:  now.Add(-2 * time.Hour),
			},
			{
				UserID:     userIDs[1],
				LocationID: parks[0].ID,
				Content:    "Visited in the morning and it was nice and quiet. By noon it got much busier. Best to come early!",
				Timestamp:  now.AddDate(0, 0, -1),
			},
		}
		for _, review := range reviews {
			if err := reviewRepo.CreateReview(ctx, review); err != nil {
				return errors.Wrap(err, "create sample review")
			}
		}

		seeded = true

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "seed sample data")
	}

	return seeded, nil
}

// historySample picks a random percentage and the level band it falls in.
func historySample(locationID int64, at time.Time) *entity.CrowdLevel {
	percentage := rand.IntN(entity.MaxPercentage) + 1

	level := entity.LevelLow
	switch {
	case percentage > 70:
		level = entity.LevelHigh
	case percentage > 40:
		level = entity.LevelMedium
	}
	waitTime := crowd.WaitTimeForLevel(level)

	return &entity.CrowdLevel{
		LocationID: locationID,
		Level:      level,
		Percentage: entity.Percentage(percentage),
		Timestamp:  at,
		WaitTime:   &waitTime,
	}
}

// RegisterSampleDataSeeder seeds the store when the application starts.
func RegisterSampleDataSeeder(lc fx.Lifecycle, seeder usecase.SampleDataSeeder, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			seeded, err := seeder.SeedSampleData(ctx)
			if err != nil {
				return err
			}
			if seeded {
				logger.Info("Sample data seeded")
			}

			return nil
		},
	})
}

func ptr[T any](v T) *T {
	return &v
}
