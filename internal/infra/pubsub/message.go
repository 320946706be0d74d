package pubsub

import (
	"encoding/json"
	"strconv"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// orderMessage is the transport-neutral form of an OrderPlacedEvent.
type orderMessage struct {
	id         string
	data       []byte
	attributes map[string]string
	// orderingKey keeps one customer's orders in sequence.
	orderingKey string
}

func newOrderMessage(event *service.OrderPlacedEvent) (*orderMessage, error) {
	if event == nil {
		return nil, errors.New("nil order event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "encode order %d event", event.OrderID)
	}

	attributes := map[string]string{
		constants.AttrEventType: constants.EventTypeOrderPlaced,
		constants.AttrOrderID:   strconv.FormatUint(uint64(event.OrderID), 10),
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return &orderMessage{
		id:          event.EventID,
		data:        data,
		attributes:  attributes,
		orderingKey: "user-" + strconv.FormatUint(uint64(event.UserID), 10),
	}, nil
}
