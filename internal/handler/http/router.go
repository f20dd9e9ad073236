// Package http wires the storefront's HTTP surface: catalog browsing and
// filtering, cart, wishlist, reviews, and the mock account flow.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oakmart/storefront/pkg/health"
	"github.com/oakmart/storefront/pkg/middleware"

	"github.com/oakmart/storefront/internal/auth"
	"github.com/oakmart/storefront/internal/catalog"
	"github.com/oakmart/storefront/internal/service"
)

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	shop *service.ShopService,
	accounts *service.AccountService,
	cat *catalog.Catalog,
	jwtManager *auth.JWTManager,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	catalogHandler := NewCatalogHandler(shop, cat, logger)
	cartHandler := NewCartHandler(shop, logger)
	wishlistHandler := NewWishlistHandler(shop, logger)
	reviewHandler := NewReviewHandler(shop, logger)
	authHandler := NewAuthHandler(accounts, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		// Account routes: login/register are open, profile needs a token.
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/register", authHandler.Register)
		r.Route("/users/me", func(r chi.Router) {
			r.Use(RequireAuth(jwtManager))
			r.Get("/", authHandler.Me)
			r.Put("/", authHandler.UpdateMe)
		})

		// Shop routes identify the caller via the X-User-ID header.
		r.Group(func(r chi.Router) {
			r.Use(UserIDFromHeader)

			r.Route("/products", func(r chi.Router) {
				r.Get("/", catalogHandler.ListProducts)
				r.Put("/filter/category", catalogHandler.SelectCategory)
				r.Put("/filter/search", catalogHandler.SetSearchTerm)
				r.Get("/{productId}", catalogHandler.GetProduct)
				r.Get("/{productId}/reviews", reviewHandler.ListReviews)
				r.Post("/{productId}/reviews", reviewHandler.CreateReview)
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Post("/items", cartHandler.AddItem)
				r.Put("/items/{productId}", cartHandler.UpdateItemQuantity)
				r.Delete("/items/{productId}", cartHandler.RemoveItem)
				r.Post("/checkout", cartHandler.Checkout)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", wishlistHandler.GetWishlist)
				r.Post("/{productId}/toggle", wishlistHandler.Toggle)
			})
		})
	})

	return r
}
