package service

import (
	"context"
	"time"
)

// OrderPlacedItem is one line of an OrderPlacedEvent.
type OrderPlacedItem struct {
	ProductID *uint  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// OrderPlacedEvent is emitted after a checkout commits. Amounts are decimal strings.
type OrderPlacedEvent struct {
	EventID     string            `json:"event_id"`
	RequestID   string            `json:"request_id,omitempty"` // For distributed tracing
	OrderID     uint              `json:"order_id"`
	UserID      uint              `json:"user_id"`
	TotalAmount string            `json:"total_amount"`
	Items       []OrderPlacedItem `json:"items"`
	PlacedAt    time.Time         `json:"placed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced announces a committed order to downstream consumers
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
