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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"storefront/config"
	"storefront/internal/domain/service"
)

func newTestEvent() *service.OrderPlacedEvent {
	productID := uint(100)

	return &service.OrderPlacedEvent{
		EventID:     "evt-1",
		RequestID:   "req-1",
		OrderID:     7,
		UserID:      1,
		TotalAmount: "250.00",
		Items:       []service.OrderPlacedItem{{ProductID: &productID, Quantity: 2, Price: "125.00"}},
		PlacedAt:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishOrderPlaced(t *testing.T) {
	var received PushRequest
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.PublishOrderPlaced(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "order.placed", received.Message.Attributes["event_type"])
	assert.Equal(t, "7", received.Message.Attributes["order_id"])
	assert.Equal(t, "user-1", received.Message.OrderingKey)
	assert.Equal(t, localSubscription, received.Subscription)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderPlacedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "250.00", decoded.TotalAmount)
	assert.Equal(t, uint(7), decoded.OrderID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "consumer down", http.StatusBadGateway)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, discardLogger()).PublishOrderPlaced(context.Background(), newTestEvent())

	assert.ErrorContains(t, err, "502")
	assert.ErrorContains(t, err, "consumer down")
}

func TestNewOrderMessage(t *testing.T) {
	event := newTestEvent()
	event.RequestID = ""

	msg, err := newOrderMessage(event)
	require.NoError(t, err)

	assert.Equal(t, "evt-1", msg.id)
	assert.Equal(t, "user-1", msg.orderingKey)
	assert.Equal(t, map[string]string{"event_type": "order.placed", "order_id": "7"}, msg.attributes)
	assert.JSONEq(t, `{
		"event_id": "evt-1",
		"order_id": 7,
		"user_id": 1,
		"total_amount": "250.00",
		"items": [{"product_id": 100, "quantity": 2, "price": "125.00"}],
		"placed_at": "2024-03-01T10:00:00Z"
	}`, string(msg.data))

	_, err = newOrderMessage(nil)
	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		pubsub   *config.PubSubConfig
		wantErr  bool
		wantDiscard bool
	}{
		{name: "not configured", pubsub: nil, wantDiscard: true},
		{name: "empty provider", pubsub: &config.PubSubConfig{}, wantDiscard: true},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:9999/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google", TopicID: "orders"}, wantErr: true},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			_, isDiscard := publisher.(*discardPublisher)
			assert.Equal(t, tt.wantDiscard, isDiscard)
			if isDiscard {
				assert.NoError(t, publisher.PublishOrderPlaced(context.Background(), newTestEvent()))
			}
		})
	}
}
