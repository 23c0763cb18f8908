package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Storage)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Crowd)
	assert.Equal(t, 24, cfg.Crowd.DefaultHistoryLimit)
	assert.Equal(t, defaultMaxHistoryLimit, cfg.Crowd.MaxHistoryLimit)
	require.NotNil(t, cfg.Locations)
	assert.InDelta(t, 0.0001, cfg.Locations.DedupToleranceDegrees, 1e-12)
	assert.Equal(t, defaultImageURL, cfg.Locations.DefaultImageURL)
	assert.InDelta(t, 1000.0, cfg.Locations.DefaultNearbyRadius, 1e-9)
	assert.NotNil(t, cfg.Auth)
	assert.NotNil(t, cfg.PubSub)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Storage:   &StorageConfig{Driver: "postgres", SeedSampleData: true},
		Crowd:     &CrowdConfig{DefaultHistoryLimit: 12, MaxHistoryLimit: 48},
		Locations: &LocationsConfig{DedupToleranceDegrees: 0.001, MaxNearbyRadius: 500},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.True(t, cfg.Storage.SeedSampleData)
	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 12, cfg.Crowd.DefaultHistoryLimit)
	assert.Equal(t, 48, cfg.Crowd.MaxHistoryLimit)
	assert.InDelta(t, 0.001, cfg.Locations.DedupToleranceDegrees, 1e-12)
	assert.InDelta(t, 500.0, cfg.Locations.MaxNearbyRadius, 1e-9)
}
