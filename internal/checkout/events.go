package checkout

import (
	"context"
	"time"
)

const (
	EventsExchange           = "beautipick.events"
	CartCheckedOutRoutingKey = "cart.checkedout.v1"
)

// CartCheckedOut is published after a confirmed order submission so
// downstream consumers (notifications, analytics) see completed checkouts.
type CartCheckedOut struct {
	EventType  string          `json:"eventType"`
	EventID    string          `json:"eventId"`
	MerchantID string          `json:"merchantId"`
	SessionID  string          `json:"sessionId"`
	OrderID    string          `json:"orderId"`
	Items      []CartItemEvent `json:"items"`
	Total      float64         `json:"totalAmount"`
	Timestamp  time.Time       `json:"timestamp"`
}

type CartItemEvent struct {
	Type      string  `json:"type"`
	CatalogID string  `json:"catalogId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// EventPublisher emits checkout events. Publishing is fire-and-forget with
// respect to the checkout itself: a publish failure is logged, never
// surfaced to the visitor.
type EventPublisher interface {
	PublishCartCheckedOut(ctx context.Context, ev CartCheckedOut) error
}
