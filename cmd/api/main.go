package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/akikr/fenix-ingestion/api/routes"
	"github.com/akikr/fenix-ingestion/internal/fulfillments"
	"github.com/akikr/fenix-ingestion/internal/orders"
	"github.com/akikr/fenix-ingestion/internal/stores"
	"github.com/akikr/fenix-ingestion/internal/tenants"
	"github.com/akikr/fenix-ingestion/internal/tracking"
	"github.com/akikr/fenix-ingestion/pkg/config"
	"github.com/akikr/fenix-ingestion/pkg/db"
	"github.com/akikr/fenix-ingestion/pkg/logger"
	"github.com/akikr/fenix-ingestion/pkg/metrics"
	"github.com/akikr/fenix-ingestion/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	tenantRepo := tenants.NewRepository(dbClient.DB())
	storeRepo := stores.NewRepository(dbClient.DB())
	orderRepo := orders.NewRepository(dbClient.DB())
	fulfillmentRepo := fulfillments.NewRepository(dbClient.DB())
	trackingRepo := tracking.NewRepository(dbClient.DB())

	tenantService, err := tenants.NewService(tenantRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create organization service", err)
		os.Exit(1)
	}
	storeService, err := stores.NewService(storeRepo, tenantRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create website service", err)
		os.Exit(1)
	}
	orderService, err := orders.NewService(orderRepo, tenantRepo, storeRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}
	fulfillmentService, err := fulfillments.NewService(fulfillmentRepo, orderRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create fulfillment service", err)
		os.Exit(1)
	}
	trackingService, err := tracking.NewService(trackingRepo, fulfillmentRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create tracking service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting ingestion api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			httpMetrics,
			tenantService,
			storeService,
			orderService,
			fulfillmentService,
			trackingService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
