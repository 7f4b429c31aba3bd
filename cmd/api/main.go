package main

import (
	"context"
	"log"
	"strings"
	"time"

	"carrier-hub/internal/core/cache"
	"carrier-hub/internal/core/config"
	"carrier-hub/internal/core/httpclient"
	"carrier-hub/internal/core/logger"
	"carrier-hub/internal/core/server"
	carrieradapters "carrier-hub/internal/features/carriers/adapters"
	"carrier-hub/internal/features/carriers/domain"
	carrierhandler "carrier-hub/internal/features/carriers/handler"
	"carrier-hub/internal/features/carriers/ports"
	carrierservice "carrier-hub/internal/features/carriers/service"

	"go.uber.org/zap"
)

// @title Carrier Hub API
// @version 1.0
// @description Multi-carrier quote aggregation, fallback routing and carrier health.
// @contact.name API Support
// @contact.email support@carrierhub.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx := context.Background()

	// Optional Redis persistence for fallback events and priority snapshots.
	var eventSink ports.FallbackEventSink
	var priorityStore ports.PrioritySnapshotStore

	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.RedisURL)
		if err != nil {
			l.Fatal("Failed to create Redis cache", zap.Error(err))
		}
		if err := redisCache.Ping(ctx); err != nil {
			l.Fatal("Redis health check failed", zap.Error(err))
		}
		l.Info("Redis connection verified")

		priorityStore = carrieradapters.NewCachePriorityRepository(redisCache)

		sink, err := carrieradapters.NewRedisEventSink(cfg.RedisURL, cfg.Fallback.EventLogSize)
		if err != nil {
			l.Fatal("Failed to create fallback event sink", zap.Error(err))
		}
		eventSink = sink
	}

	// Register one REST gateway adapter per configured carrier.
	registry := carrierservice.NewRegistry()
	gatewayClient := httpclient.NewClient(time.Duration(cfg.Dispatch.CallTimeoutSeconds) * time.Second)

	for name, gw := range cfg.Carriers {
		carrier := domain.CarrierID(name)
		registry.Register(carrier, carrieradapters.NewRESTAdapter(carrier, gw.URL, gw.APIKey, gatewayClient))
		l.Info("Carrier registered", zap.String("carrier", name))
	}

	if len(registry.List()) == 0 {
		l.Warn("No carrier gateways configured; every quote will fail")
	}

	// Orchestration components.
	health := carrierservice.NewHealthTracker(time.Duration(cfg.Dispatch.RetryAfterMinutes) * time.Minute)
	quoteTimeout := time.Duration(cfg.Dispatch.QuoteTimeoutSeconds) * time.Second
	callTimeout := time.Duration(cfg.Dispatch.CallTimeoutSeconds) * time.Second

	dispatcher := carrierservice.NewDispatcher(registry, health, quoteTimeout, callTimeout)
	aggregator := carrierservice.NewQuoteAggregator(registry, health, quoteTimeout)
	router := carrierservice.NewFallbackRouter(dispatcher, eventSink, priorityStore)

	if err := router.LoadSnapshots(ctx); err != nil {
		l.Fatal("Failed to load fallback priority snapshots", zap.Error(err))
	}

	// Seed the wildcard priority list from config unless an operator snapshot
	// already defined one.
	if cfg.Fallback.DefaultPriority != "" {
		if _, err := router.SelectPrimary(domain.RouteWildcard); err != nil {
			var carriers []domain.CarrierID
			for _, name := range strings.Split(cfg.Fallback.DefaultPriority, ",") {
				carriers = append(carriers, domain.CarrierID(strings.TrimSpace(name)))
			}

			if err := router.ConfigurePriority(ctx, domain.RouteWildcard, carriers); err != nil {
				l.Fatal("Invalid FALLBACK_DEFAULT_PRIORITY", zap.Error(err))
			}
		}
	}

	carriers := carrierservice.NewCarrierService(registry, health, dispatcher, aggregator, router)
	hdl := carrierhandler.NewCarrierHandler(carriers, router)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/quotes/best", hdl.GetBestQuote)
	srv.App.Post("/quotes", hdl.GetQuote)
	srv.App.Post("/labels", hdl.GenerateLabel)
	srv.App.Get("/tracking/:number", hdl.TrackShipment)
	srv.App.Post("/pickups", hdl.SchedulePickup)
	srv.App.Get("/carriers", hdl.ListCarriers)
	srv.App.Get("/carriers/:carrier/health", hdl.GetCarrierHealth)
	srv.App.Put("/fallback/:route", hdl.ConfigurePriority)
	srv.App.Get("/fallback/:route/events", hdl.GetFallbackEvents)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
