// Package crowd derives the read views over crowd-level samples:
// the current level of a location and its recent history.
package crowd

import (
	"cmp"
	"slices"
	"time"

	"crowdmap/internal/domain/entity"
)

// DefaultHistoryLimit covers one day of hourly samples.
const DefaultHistoryLimit = 24

// Newer orders samples most recent first. Equal timestamps fall back to the
// higher id so the order is total and stable across calls.
func Newer(a, b *entity.CrowdLevel) int {
	if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
		return c
	}

	return cmp.Compare(b.ID, a.ID)
}

// Current returns the sample with the greatest timestamp, or nil when there are none.
func Current(samples []*entity.CrowdLevel) *entity.CrowdLevel {
	var current *entity.CrowdLevel
	for _, sample := range samples {
		if current == nil || Newer(sample, current) < 0 {
			current = sample
		}
	}

	return current
}

// History returns up to limit samples, most recent first. The input slice is not modified.
// A non-positive limit yields an empty history.
func History(samples []*entity.CrowdLevel, limit int) []*entity.CrowdLevel {
	if limit <= 0 {
		return []*entity.CrowdLevel{}
	}

	sorted := slices.Clone(samples)
	slices.SortFunc(sorted, Newer)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	return sorted
}

// Sample shape produced for each perceived level.
type derivation struct {
	percentage entity.Percentage
	waitTime   int
}

var derivations = map[entity.Level]derivation{
	entity.LevelLow:    {percentage: 30, waitTime: 0},
	entity.LevelMedium: {percentage: 60, waitTime: 15},
	entity.LevelHigh:   {percentage: 90, waitTime: 30},
}

// DeriveFromCheckIn maps a check-in to the sample it contributes. The sample is
// stamped with at, the moment of derivation, not the check-in's own timestamp.
// Each check-in yields exactly one sample; there is no averaging across check-ins.
func DeriveFromCheckIn(checkIn *entity.CheckIn, at time.Time) (*entity.CrowdLevel, error) {
	d, ok := derivations[checkIn.CrowdPerception]
	if !ok {
		return nil, entity.ErrInvalidLevel
	}

	waitTime := d.waitTime

	return &entity.CrowdLevel{
		LocationID: checkIn.LocationID,
		Level:      checkIn.CrowdPerception,
		Percentage: d.percentage,
		Timestamp:  at,
		WaitTime:   &waitTime,
	}, nil
}

// WaitTimeForLevel is the nominal wait in minutes associated with a level.
func WaitTimeForLevel(level entity.Level) int {
	return derivations[level].waitTime
}
