package router

import (
	"net/http"

	"mini-erp/internal/handler"
	"mini-erp/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	couponHandler *handler.CouponHandler,
	orderHandler *handler.OrderHandler,
	checkoutHandler *handler.CheckoutHandler,
	adminHandler *handler.AdminHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	r.Use(middleware.APIKeyAuth(apiKey, logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Post("/", productHandler.Create)
			r.Get("/{id}", productHandler.Get)
			r.Put("/{id}", productHandler.Update)
			r.Put("/{id}/stock", productHandler.UpdateStock)
		})

		r.Get("/stock", productHandler.ListStock)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.List)
			r.Delete("/", cartHandler.Clear)
			r.Get("/totals", cartHandler.Totals)
			r.Post("/items", cartHandler.Add)
			r.Put("/items/{productID}/{variationID}", cartHandler.SetQuantity)
			r.Delete("/items/{productID}/{variationID}", cartHandler.Remove)
			r.Post("/coupon", cartHandler.ApplyCoupon)
		})

		r.Route("/coupons", func(r chi.Router) {
			r.Get("/", couponHandler.List)
			r.Post("/", couponHandler.Create)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orderHandler.List)
			r.Get("/{id}", orderHandler.Get)
			r.Put("/{id}/status", orderHandler.UpdateStatus)
			r.Delete("/{id}", orderHandler.Delete)
		})

		r.Get("/cep/{code}", checkoutHandler.LookupAddress)
		r.Post("/checkout", checkoutHandler.PlaceOrder)

		r.Post("/admin/backup", adminHandler.Backup)
	})

	return r
}
