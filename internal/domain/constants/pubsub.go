// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Message attributes set on every order event.
const (
	AttrEventType = "event_type"
	AttrOrderID   = "order_id"
	AttrRequestID = "request_id"

	EventTypeOrderPlaced = "order.placed"
)
