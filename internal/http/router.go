package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(storefront *StorefrontHandler, carts *CartHandler, checkouts *CheckoutHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", healthHandler)

	r.Get("/s/{merchantId}", storefront.RenderPage)

	r.Route("/api/cart/{merchantId}", func(r chi.Router) {
		r.Get("/", carts.GetCart)
		r.Post("/services/{serviceId}", carts.AddService)
		r.Post("/products/{productId}", carts.AddProduct)
		r.Post("/products/{productId}/quantity", carts.UpdateProductQuantity)
		r.Delete("/items/{itemId}", carts.RemoveItem)
		// form-friendly aliases for the rendered pages
		r.Post("/items/{itemId}/remove", carts.RemoveItem)
		r.Delete("/", carts.ClearCart)
		r.Post("/clear", carts.ClearCart)

		r.Post("/checkout", checkouts.Checkout)
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "storefront"})
}
