package entity

import (
	"fmt"
	"time"
)

// Level is the three-valued crowd ordinal.
type Level int

const (
	LevelLow    Level = 1
	LevelMedium Level = 2
	LevelHigh   Level = 3
)

// ErrInvalidLevel is returned by ParseLevel for values outside 1..3.
var ErrInvalidLevel = fmt.Errorf("crowd level must be %d, %d or %d", LevelLow, LevelMedium, LevelHigh)

// ErrInvalidPercentage is returned by NewPercentage for values outside 0..100.
var ErrInvalidPercentage = fmt.Errorf("percentage must be between %d and %d", MinPercentage, MaxPercentage)

// ParseLevel is the checked constructor for Level.
func ParseLevel(v int) (Level, error) {
	level := Level(v)
	if !level.Valid() {
		return 0, ErrInvalidLevel
	}

	return level, nil
}

// Valid reports whether the level is one of the three known values.
func (l Level) Valid() bool {
	return l >= LevelLow && l <= LevelHigh
}

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "Low"
	case LevelMedium:
		return "Medium"
	case LevelHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Percentage is a crowd density estimate bounded to 0..100.
type Percentage int

const (
	MinPercentage = 0
	MaxPercentage = 100
)

// NewPercentage is the checked constructor for Percentage.
func NewPercentage(v int) (Percentage, error) {
	if v < MinPercentage || v > MaxPercentage {
		return 0, ErrInvalidPercentage
	}

	return Percentage(v), nil
}

// CrowdLevel is one immutable point-in-time crowd observation (a sample).
type CrowdLevel struct {
	ID         int64      `json:"id"`
	LocationID int64      `json:"locationId"`
	Level      Level      `json:"level"`
	Percentage Percentage `json:"percentage"`
	Timestamp  time.Time  `json:"timestamp"`
	WaitTime   *int       `json:"waitTime"` // Minutes, non-negative.
}
