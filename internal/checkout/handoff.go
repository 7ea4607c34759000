package checkout

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/cart"
)

// Cart is the slice of the cart store the handoff touches: a read-only
// snapshot plus the single post-success clear. The handoff never mutates
// entries itself.
type Cart interface {
	Snapshot() []cart.Entry
	Clear(ctx context.Context)
}

// Handoff is the boundary between cart state and the external order service.
// On success the cart is cleared exactly once; on any failure it is left
// exactly as it was so the visitor can retry.
type Handoff struct {
	orders OrderClient
	events EventPublisher
	logger *log.Logger
}

func NewHandoff(orders OrderClient, events EventPublisher, logger *log.Logger) *Handoff {
	return &Handoff{orders: orders, events: events, logger: logger}
}

// Submit reads a snapshot of the cart, sends it to the order service and, on
// confirmed success, clears the cart and emits a CartCheckedOut event.
// Cancelling ctx aborts the submission; an aborted submission never clears.
func (h *Handoff) Submit(ctx context.Context, merchantID, sessionID string, c Cart, contact Contact) (string, error) {
	entries := c.Snapshot()

	sub, err := buildSubmission(merchantID, entries, contact)
	if err != nil {
		return "", err
	}

	orderID, err := h.orders.CreateOrder(ctx, sub)
	if err != nil {
		return "", err
	}

	// The order now exists; finish the local side even if the request context
	// is being torn down, otherwise already-ordered items linger in the cart.
	doneCtx := context.WithoutCancel(ctx)
	c.Clear(doneCtx)

	if h.events != nil {
		ev := CartCheckedOut{
			EventType:  "CartCheckedOut",
			EventID:    uuid.NewString(),
			MerchantID: merchantID,
			SessionID:  sessionID,
			OrderID:    orderID,
			Total:      sub.Total,
			Timestamp:  time.Now().UTC(),
		}
		for _, ln := range sub.Lines {
			ev.Items = append(ev.Items, CartItemEvent{
				Type:      ln.Type,
				CatalogID: ln.CatalogID,
				Quantity:  ln.Quantity,
				Price:     ln.UnitPrice,
			})
		}
		if err := h.events.PublishCartCheckedOut(doneCtx, ev); err != nil {
			h.logger.Printf("publish CartCheckedOut for order %s: %v", orderID, err)
		}
	}

	return orderID, nil
}
