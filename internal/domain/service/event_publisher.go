package service

import (
	"context"
	"time"
)

// CheckInEvent is emitted once a check-in and its derived crowd level sample are stored
type CheckInEvent struct {
	MessageID    string    `json:"message_id"`
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	CheckInID    int64     `json:"check_in_id"`
	CrowdLevelID int64     `json:"crowd_level_id"`
	UserID       int64     `json:"user_id"`
	LocationID   int64     `json:"location_id"`
	Level        int       `json:"level"`
	Percentage   int       `json:"percentage"`
	WaitTime     *int      `json:"wait_time,omitempty"`
	ObservedAt   time.Time `json:"observed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCheckInEvent publishes a check-in event for downstream consumers
	PublishCheckInEvent(ctx context.Context, event *CheckInEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
