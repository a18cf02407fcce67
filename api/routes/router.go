package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akikr/fenix-ingestion/api/controllers"
	"github.com/akikr/fenix-ingestion/api/middleware"
	"github.com/akikr/fenix-ingestion/internal/fulfillments"
	"github.com/akikr/fenix-ingestion/internal/orders"
	"github.com/akikr/fenix-ingestion/internal/stores"
	"github.com/akikr/fenix-ingestion/internal/tenants"
	"github.com/akikr/fenix-ingestion/internal/tracking"
	"github.com/akikr/fenix-ingestion/pkg/config"
	"github.com/akikr/fenix-ingestion/pkg/db"
	"github.com/akikr/fenix-ingestion/pkg/logger"
	"github.com/akikr/fenix-ingestion/pkg/metrics"
)

// NewRouter wires the ingestion API surface: health probes, the
// Prometheus scrape endpoint and the five resource trees.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	tenantService tenants.Service,
	storeService stores.Service,
	orderService orders.Service,
	fulfillmentService fulfillments.Service,
	trackingService tracking.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, logg))
	})

	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Route("/organizations", func(r chi.Router) {
		r.Post("/", controllers.OrganizationCreate(tenantService, logg))
		r.Get("/", controllers.OrganizationSearch(tenantService, logg))
		r.Get("/search", controllers.OrganizationLookup(tenantService, logg))
		r.Route("/{orgId}", func(r chi.Router) {
			r.Get("/", controllers.OrganizationGet(tenantService, logg))
			r.Put("/", controllers.OrganizationUpdate(tenantService, logg))
			r.Patch("/", controllers.OrganizationPatch(tenantService, logg))
			r.Delete("/", controllers.OrganizationDelete(tenantService, logg))

			r.Route("/websites", func(r chi.Router) {
				r.Post("/", controllers.WebsiteCreate(storeService, logg))
				r.Get("/", controllers.WebsiteSearch(storeService, logg))
				r.Get("/search", controllers.WebsiteLookup(storeService, logg))
				r.Route("/{websiteId}", func(r chi.Router) {
					r.Get("/", controllers.WebsiteGet(storeService, logg))
					r.Put("/", controllers.WebsiteUpdate(storeService, logg))
					r.Patch("/", controllers.WebsitePatch(storeService, logg))
					r.Delete("/", controllers.WebsiteDelete(storeService, logg))
				})
			})
		})
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", controllers.OrderIngest(orderService, logg))
		r.Get("/", controllers.OrderSearch(orderService, logg))
		r.Get("/search", controllers.OrderLookup(orderService, logg))
		r.Route("/{orderId}", func(r chi.Router) {
			r.Get("/", controllers.OrderGet(orderService, logg))
			r.Put("/", controllers.OrderUpdate(orderService, logg))
			r.Patch("/", controllers.OrderPatch(orderService, logg))
			r.Delete("/", controllers.OrderDelete(orderService, logg))

			r.Route("/fulfillments", func(r chi.Router) {
				r.Post("/", controllers.FulfillmentCreate(fulfillmentService, logg))
				r.Get("/", controllers.FulfillmentSearch(fulfillmentService, logg))
				r.Get("/search", controllers.FulfillmentLookup(fulfillmentService, logg))
				r.Route("/{fulfillmentId}", func(r chi.Router) {
					r.Get("/", controllers.FulfillmentGet(fulfillmentService, logg))
					r.Put("/", controllers.FulfillmentUpdate(fulfillmentService, logg))
					r.Patch("/", controllers.FulfillmentPatch(fulfillmentService, logg))
					r.Delete("/", controllers.FulfillmentDelete(fulfillmentService, logg))
				})
			})
		})
	})

	r.Route("/fulfillments/{fulfillmentId}/tracking", func(r chi.Router) {
		r.Post("/", controllers.TrackingCreate(trackingService, logg))
		r.Get("/", controllers.TrackingSearch(trackingService, logg))
		r.Get("/search", controllers.TrackingLookup(trackingService, logg))
		r.Route("/{trackingId}", func(r chi.Router) {
			r.Get("/", controllers.TrackingGet(trackingService, logg))
			r.Put("/", controllers.TrackingUpdate(trackingService, logg))
			r.Patch("/", controllers.TrackingPatch(trackingService, logg))
			r.Delete("/", controllers.TrackingDelete(trackingService, logg))
		})
	})

	return r
}
