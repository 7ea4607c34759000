package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/cart"
	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/catalog"
)

// CartHandler exposes the cart mutation/query surface over HTTP. Catalog
// references are always resolved server-side so a request can never inject a
// price: the client only ever names ids and quantities.
type CartHandler struct {
	catalog   CatalogClient
	snapshots cart.SnapshotRepository
	logger    *log.Logger
}

func NewCartHandler(catalogClient CatalogClient, snapshots cart.SnapshotRepository, logger *log.Logger) *CartHandler {
	return &CartHandler{catalog: catalogClient, snapshots: snapshots, logger: logger}
}

type cartResponse struct {
	Items []cart.Entry `json:"items"`
	Total float64      `json:"total"`
}

func (h *CartHandler) loadStore(ctx context.Context, w http.ResponseWriter, r *http.Request) (*cart.Store, string, bool) {
	merchantID := chi.URLParam(r, "merchantId")
	if merchantID == "" {
		writeError(w, http.StatusBadRequest, "missing merchantId")
		return nil, "", false
	}

	store := cart.NewStore(merchantID, sessionID(w, r), h.snapshots, h.logger)
	if err := store.Hydrate(ctx); err != nil {
		h.logger.Printf("hydrate cart merchant=%s: %v", merchantID, err)
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return nil, "", false
	}
	return store, merchantID, true
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	store, _, ok := h.loadStore(ctx, w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: store.Snapshot(), Total: store.Total()})
}

func (h *CartHandler) AddService(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	store, merchantID, ok := h.loadStore(ctx, w, r)
	if !ok {
		return
	}

	svc, ok := h.findService(ctx, w, merchantID, chi.URLParam(r, "serviceId"))
	if !ok {
		return
	}

	store.AddService(ctx, svc)
	h.finish(w, r, merchantID, store)
}

func (h *CartHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	store, merchantID, ok := h.loadStore(ctx, w, r)
	if !ok {
		return
	}

	prod, ok := h.findProduct(ctx, w, merchantID, chi.URLParam(r, "productId"))
	if !ok {
		return
	}

	store.AddProduct(ctx, prod)
	h.finish(w, r, merchantID, store)
}

func (h *CartHandler) UpdateProductQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	store, merchantID, ok := h.loadStore(ctx, w, r)
	if !ok {
		return
	}

	qty, err := parseQuantity(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quantity")
		return
	}

	store.SetProductQuantity(ctx, chi.URLParam(r, "productId"), qty)
	h.finish(w, r, merchantID, store)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	store, merchantID, ok := h.loadStore(ctx, w, r)
	if !ok {
		return
	}

	store.Remove(ctx, chi.URLParam(r, "itemId"))
	h.finish(w, r, merchantID, store)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	store, merchantID, ok := h.loadStore(ctx, w, r)
	if !ok {
		return
	}

	store.Clear(ctx)
	h.finish(w, r, merchantID, store)
}

// finish answers a mutation: theme form posts get redirected back to the
// storefront page, API callers get the fresh snapshot.
func (h *CartHandler) finish(w http.ResponseWriter, r *http.Request, merchantID string, store *cart.Store) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		http.Redirect(w, r, "/s/"+merchantID, http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: store.Snapshot(), Total: store.Total()})
}

func (h *CartHandler) findService(ctx context.Context, w http.ResponseWriter, merchantID, serviceID string) (catalog.Service, bool) {
	bundle, ok := h.loadBundle(ctx, w, merchantID)
	if !ok {
		return catalog.Service{}, false
	}
	for _, svc := range bundle.Services {
		if svc.ID == serviceID {
			return svc, true
		}
	}
	writeError(w, http.StatusNotFound, "service not found")
	return catalog.Service{}, false
}

func (h *CartHandler) findProduct(ctx context.Context, w http.ResponseWriter, merchantID, productID string) (catalog.Product, bool) {
	bundle, ok := h.loadBundle(ctx, w, merchantID)
	if !ok {
		return catalog.Product{}, false
	}
	for _, prod := range bundle.Products {
		if prod.ID == productID {
			return prod, true
		}
	}
	writeError(w, http.StatusNotFound, "product not found")
	return catalog.Product{}, false
}

func (h *CartHandler) loadBundle(ctx context.Context, w http.ResponseWriter, merchantID string) (*catalog.StorefrontBundle, bool) {
	bundle, err := h.catalog.GetStorefront(ctx, merchantID)
	if err != nil {
		if errors.Is(err, catalog.ErrMerchantNotFound) {
			writeError(w, http.StatusNotFound, "merchant not found")
			return nil, false
		}
		h.logger.Printf("load catalog merchant=%s: %v", merchantID, err)
		writeError(w, http.StatusBadGateway, "failed to load catalog")
		return nil, false
	}
	return bundle, true
}

// parseQuantity accepts the quantity from a form field or a JSON body.
func parseQuantity(r *http.Request) (int, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		return strconv.Atoi(r.FormValue("quantity"))
	}

	var body struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return 0, err
	}
	if body.Quantity == nil {
		return 0, errors.New("missing quantity")
	}
	return *body.Quantity, nil
}
