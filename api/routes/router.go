package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/techstore/storefront-backend/api/controllers"
	"github.com/techstore/storefront-backend/api/middleware"
	"github.com/techstore/storefront-backend/internal/cart"
	"github.com/techstore/storefront-backend/internal/catalog"
	"github.com/techstore/storefront-backend/internal/orders"
	"github.com/techstore/storefront-backend/internal/shopconfig"
	"github.com/techstore/storefront-backend/internal/users"
	"github.com/techstore/storefront-backend/pkg/config"
	"github.com/techstore/storefront-backend/pkg/logger"
	"github.com/techstore/storefront-backend/pkg/metrics"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          controllers.Pinger
	Redis       controllers.Pinger
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics

	Catalog    catalog.Service
	Cart       cart.Service
	Orders     orders.Service
	Users      users.Service
	ShopConfig *shopconfig.Provider
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.CORS(),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.Logging(deps.Logger),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, deps.DB, deps.Redis))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/config", controllers.ShopConfig(deps.ShopConfig, deps.Logger))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(deps.Catalog, deps.Logger))
			r.Get("/{productId}", controllers.ProductDetail(deps.Catalog, deps.Logger))
		})
		r.Get("/categories", controllers.CategoryTree(deps.Catalog, deps.Logger))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(deps.Config.JWT, deps.Logger))

			r.Get("/ping", controllers.PrivatePing())

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(deps.Cart, deps.Logger))
				r.Delete("/", controllers.CartClear(deps.Cart, deps.Logger))
				r.Post("/items", controllers.CartAdd(deps.Cart, deps.Logger))
				r.Put("/items", controllers.CartUpdate(deps.Cart, deps.Logger))
				r.Post("/items/remove", controllers.CartRemove(deps.Cart, deps.Logger))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", controllers.OrderCreate(deps.Orders, deps.Cart, deps.Logger))
				r.Get("/", controllers.OrderList(deps.Orders, deps.Logger))
				r.Get("/{orderId}", controllers.OrderDetail(deps.Orders, deps.Logger))
				r.Post("/{orderId}/status", controllers.OrderTransition(deps.Orders, deps.Logger))
				r.Post("/{orderId}/cancel", controllers.OrderCancel(deps.Orders, deps.Logger))
			})

			r.Route("/user", func(r chi.Router) {
				r.Get("/", controllers.UserProfile(deps.Users, deps.Logger))
				r.Put("/", controllers.UserUpdate(deps.Users, deps.Logger))
			})
		})
	})

	return r
}
