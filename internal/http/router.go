package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marketmind/marketmind/internal/http/handlers"
)

// NewRouter wires the full API surface. Everything except login sits
// behind the auth middleware.
func NewRouter() http.Handler {
	r := chi.NewRouter()

	// Only the unauthenticated endpoint is rate limited.
	r.With(RateLimitMiddleware).Post("/login", handlers.LoginHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Use(RequestLogMiddleware)

		r.Post("/logout", handlers.LogoutHandler)
		r.Get("/me", handlers.CurrentUserHandler)

		r.Post("/products", handlers.CreateProductHandler)
		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/search", handlers.FilterProductsHandler)
		r.Get("/products/export", handlers.ExportProductsHandler)
		r.Post("/products/import", handlers.ImportProductsHandler)
		r.Get("/products/categories", handlers.GetCategoriesHandler)
		r.Get("/products/{id}", handlers.GetProductByIDHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)

		r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

		r.Post("/carts", handlers.CreateCartHandler)
		r.Get("/carts/{cartID}", handlers.GetCartHandler)
		r.Delete("/carts/{cartID}", handlers.DropCartHandler)
		r.Post("/carts/{cartID}/items", handlers.AddCartItemHandler)
		r.Put("/carts/{cartID}/items/{productID}", handlers.UpdateCartItemHandler)
		r.Delete("/carts/{cartID}/items/{productID}", handlers.RemoveCartItemHandler)
		r.Post("/carts/{cartID}/checkout/begin", handlers.BeginCheckoutHandler)
		r.Post("/carts/{cartID}/checkout/cancel", handlers.CancelCheckoutHandler)
		r.Post("/carts/{cartID}/checkout", handlers.CheckoutHandler)

		r.Get("/bills", handlers.GetBillsHandler)
		r.Get("/bills/summary", handlers.GetBillingSummaryHandler)
		r.Get("/bills/{id}", handlers.GetBillByIDHandler)
		r.Get("/bills/{id}/print", handlers.PrintBillHandler)
	})

	return r
}
