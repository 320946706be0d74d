package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const (
	localSubscription = "projects/local/subscriptions/storefront-orders"
	localPushTimeout  = 5 * time.Second
	errorBodyLimit    = 512
)

// PushedMessage mirrors the message part of a Pub/Sub push request.
type PushedMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
	OrderingKey string            `json:"orderingKey,omitempty"`
}

// PushRequest is the body a push subscription delivers to its endpoint.
type PushRequest struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

// localHTTPPublisher posts push requests straight to a development consumer.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
	}
}

func (p *localHTTPPublisher) PublishOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error {
	msg, err := newOrderMessage(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(PushRequest{
		Subscription: localSubscription,
		Message: PushedMessage{
			Data:        base64.StdEncoding.EncodeToString(msg.data),
			Attributes:  msg.attributes,
			MessageID:   msg.id,
			PublishTime: time.Now().UTC().Format(time.RFC3339Nano),
			OrderingKey: msg.orderingKey,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push order %d", event.OrderID)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))

		return errors.Errorf("push endpoint answered %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	p.logger.DebugContext(ctx, "order event pushed",
		slog.String("endpoint", p.endpoint),
		slog.Uint64("order_id", uint64(event.OrderID)),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
