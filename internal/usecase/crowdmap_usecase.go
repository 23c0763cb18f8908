package usecase

import "context"

// CrowdMapUsecase is the single capability set the request layer depends on.
type CrowdMapUsecase interface {
	UserUsecase
	LocationUsecase
	CrowdUsecase
	CheckInUsecase
	ReviewUsecase
	FavoriteUsecase
}

// SampleDataSeeder fills an empty store with demonstration data.
type SampleDataSeeder interface {
	// SeedSampleData reports whether anything was written. It is a no-op when locations exist.
	SeedSampleData(ctx context.Context) (bool, error)
}
