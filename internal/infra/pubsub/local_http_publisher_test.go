package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crowdmap/config"
	"crowdmap/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishCheckInEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	waitTime := 15
	event := &service.CheckInEvent{
		MessageID:  "msg-1",
		RequestID:  "req-1",
		CheckInID:  3,
		UserID:     1,
		LocationID: 5,
		Level:      2,
		Percentage: 60,
		WaitTime:   &waitTime,
		ObservedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishCheckInEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "msg-1", received.Message.MessageID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "5", received.Message.Attributes["location_id"])
	assert.Equal(t, "check_in.created", received.Message.Attributes["event_type"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.CheckInEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, int64(3), decoded.CheckInID)
	assert.Equal(t, 60, decoded.Percentage)
	require.NotNil(t, decoded.WaitTime)
	assert.Equal(t, 15, *decoded.WaitTime)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishCheckInEvent(context.Background(), &service.CheckInEvent{MessageID: "m"})
	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		noop    bool
	}{
		{name: "unset provider uses noop", cfg: &config.PubSubConfig{}, noop: true},
		{name: "nil section uses noop", cfg: nil, noop: true},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1"}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.noop, isNoop)
			if tt.noop {
				assert.NoError(t, publisher.PublishCheckInEvent(context.Background(), &service.CheckInEvent{}))
			}
		})
	}
}
