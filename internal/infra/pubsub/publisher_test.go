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

	"catalog/config"
	"catalog/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{PubSub: cfg},
		Logger: discardLogger(),
	}
}

func TestNewEventPublisher_Unconfigured(t *testing.T) {
	publisher, err := NewEventPublisher(newParams(t, nil))

	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishCatalogEvent(context.Background(), &service.CatalogEvent{Resource: "brand"}))
}

func TestNewEventPublisher_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(newParams(t, tt.cfg))

			assert.Error(t, err)
		})
	}
}

func TestValidatePubSubConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8085/push"}},
		{name: "google", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p", TopicID: "t"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "pubsub.localEndpoint"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: "pubsub.topicId"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: `"kafka"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePubSubConfig(tt.cfg)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: "local", LocalEndpoint: server.URL}))
	require.NoError(t, err)

	event := &service.CatalogEvent{
		RequestID:  "req-1",
		Resource:   "product",
		ResourceID: "p-1",
		Action:     service.CatalogCreated,
		OccurredAt: time.Now().UTC(),
	}
	require.NoError(t, publisher.PublishCatalogEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "product", received.Message.Attributes["resource"])
	assert.Equal(t, "created", received.Message.Attributes["action"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.CatalogEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "p-1", decoded.ResourceID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishCatalogEvent(context.Background(), &service.CatalogEvent{Resource: "banner"})

	assert.ErrorContains(t, err, "503")
}
