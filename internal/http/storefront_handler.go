package httpapi

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/cart"
	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/catalog"
	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/theme"
)

// CatalogClient is the read side of the external catalog service.
type CatalogClient interface {
	GetStorefront(ctx context.Context, merchantID string) (*catalog.StorefrontBundle, error)
}

// StorefrontHandler renders merchant pages: fetch the bundle, hydrate the
// visitor's cart, resolve the configured theme and render.
type StorefrontHandler struct {
	catalog   CatalogClient
	snapshots cart.SnapshotRepository
	registry  *theme.Registry
	logger    *log.Logger
}

func NewStorefrontHandler(catalogClient CatalogClient, snapshots cart.SnapshotRepository, registry *theme.Registry, logger *log.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		catalog:   catalogClient,
		snapshots: snapshots,
		registry:  registry,
		logger:    logger,
	}
}

func (h *StorefrontHandler) RenderPage(w http.ResponseWriter, r *http.Request) {
	merchantID := chi.URLParam(r, "merchantId")
	if merchantID == "" {
		writeError(w, http.StatusBadRequest, "missing merchantId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	bundle, err := h.catalog.GetStorefront(ctx, merchantID)
	if err != nil {
		if errors.Is(err, catalog.ErrMerchantNotFound) {
			writeError(w, http.StatusNotFound, "merchant not found")
			return
		}
		h.logger.Printf("load storefront %s: %v", merchantID, err)
		writeError(w, http.StatusBadGateway, "failed to load storefront")
		return
	}

	store := cart.NewStore(merchantID, sessionID(w, r), h.snapshots, h.logger)
	if err := store.Hydrate(ctx); err != nil {
		// The page can still render with an empty cart.
		h.logger.Printf("hydrate cart for merchant=%s: %v", merchantID, err)
	}

	th := h.registry.Resolve(bundle.Merchant.Theme.TemplateID)

	props := theme.Props{
		Data:     theme.DataFromBundle(bundle),
		Colors:   theme.ColorsFromConfig(bundle.Merchant.Theme),
		Cart:     store.Bind(ctx),
		Locale:   bundle.Locale,
		Currency: bundle.Currency,
		CartPath: "/api/cart/" + merchantID,
	}

	// Render into a buffer first so a template failure never leaks a partial
	// page with a 200 status.
	var buf bytes.Buffer
	if err := th.Render(&buf, props); err != nil {
		h.logger.Printf("render theme %s for merchant=%s: %v", th.Name(), merchantID, err)
		writeError(w, http.StatusInternalServerError, "failed to render storefront")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
