package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/cart"
	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/checkout"
)

// Handoff is implemented by checkout.Handoff.
type Handoff interface {
	Submit(ctx context.Context, merchantID, sessionID string, c checkout.Cart, contact checkout.Contact) (string, error)
}

type CheckoutHandler struct {
	snapshots cart.SnapshotRepository
	handoff   Handoff
	logger    *log.Logger
}

func NewCheckoutHandler(snapshots cart.SnapshotRepository, handoff Handoff, logger *log.Logger) *CheckoutHandler {
	return &CheckoutHandler{snapshots: snapshots, handoff: handoff, logger: logger}
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	merchantID := chi.URLParam(r, "merchantId")
	if merchantID == "" {
		writeError(w, http.StatusBadRequest, "missing merchantId")
		return
	}

	contact, err := parseContact(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid contact")
		return
	}
	if contact.Name == "" || contact.Email == "" {
		writeError(w, http.StatusBadRequest, "name and email are required")
		return
	}

	// Checkout waits on the order service, so it gets a longer budget than
	// the synchronous cart mutations.
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sid := sessionID(w, r)
	store := cart.NewStore(merchantID, sid, h.snapshots, h.logger)
	if err := store.Hydrate(ctx); err != nil {
		h.logger.Printf("hydrate cart merchant=%s: %v", merchantID, err)
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}

	orderID, err := h.handoff.Submit(ctx, merchantID, sid, store, contact)
	if err != nil {
		var se *checkout.SubmitError
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			writeError(w, http.StatusBadRequest, "cart is empty")
		case errors.As(err, &se):
			// Cart is untouched; the client can retry.
			writeJSON(w, http.StatusBadGateway, map[string]string{
				"error":  se.Message,
				"reason": se.Reason,
			})
		default:
			h.logger.Printf("checkout merchant=%s: %v", merchantID, err)
			writeError(w, http.StatusBadGateway, "order submission failed, please retry")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"orderId": orderID})
}

func parseContact(r *http.Request) (checkout.Contact, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return checkout.Contact{}, err
		}
		return checkout.Contact{
			Name:  r.PostFormValue("name"),
			Email: r.PostFormValue("email"),
			Phone: r.PostFormValue("phone"),
			Note:  r.PostFormValue("note"),
		}, nil
	}

	var contact checkout.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		return checkout.Contact{}, err
	}
	return contact, nil
}
