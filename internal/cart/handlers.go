package cart

import (
	"context"

	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/catalog"
)

// Handlers is the single mutation/query surface handed to every theme.
// Themes never touch the raw cart value: membership and quantity decisions go
// through the query methods, and each user action maps to exactly one
// mutation method. The bound context is the rendering request's context.
type Handlers struct {
	store *Store
	ctx   context.Context
}

// Bind ties the store to a request context for use by themes and handlers.
func (s *Store) Bind(ctx context.Context) *Handlers {
	return &Handlers{store: s, ctx: ctx}
}

// Cart returns the current entry snapshot.
func (h *Handlers) Cart() []Entry { return h.store.Snapshot() }

func (h *Handlers) Total() float64 { return h.store.Total() }

func (h *Handlers) IsServiceInCart(id string) bool { return h.store.IsServiceInCart(id) }

func (h *Handlers) IsProductInCart(id string) bool { return h.store.IsProductInCart(id) }

func (h *Handlers) GetProductQuantityInCart(id string) int { return h.store.ProductQuantity(id) }

func (h *Handlers) AddServiceToCart(svc catalog.Service) { h.store.AddService(h.ctx, svc) }

func (h *Handlers) AddProductToCart(p catalog.Product) { h.store.AddProduct(h.ctx, p) }

func (h *Handlers) UpdateProductQuantity(id string, qty int) {
	h.store.SetProductQuantity(h.ctx, id, qty)
}

func (h *Handlers) RemoveFromCart(id string) { h.store.Remove(h.ctx, id) }

func (h *Handlers) ClearCart() { h.store.Clear(h.ctx) }
