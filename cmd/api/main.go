package main

import (
	"context"
	"log"
	"time"

	"orders-retriever/internal/core/cache"
	"orders-retriever/internal/core/config"
	"orders-retriever/internal/core/logger"
	"orders-retriever/internal/core/ratelimit"
	"orders-retriever/internal/core/server"
	ratesadapters "orders-retriever/internal/features/rates/adapters"
	ratesports "orders-retriever/internal/features/rates/ports"
	ratesservice "orders-retriever/internal/features/rates/service"
	retrievaladapters "orders-retriever/internal/features/retrieval/adapters"
	"orders-retriever/internal/features/retrieval/domain"
	retrievalhandler "orders-retriever/internal/features/retrieval/handler"
	retrievalservice "orders-retriever/internal/features/retrieval/service"

	"go.uber.org/zap"
)

// @title Orders Retriever API
// @version 1.0
// @description This API retrieves per-day, per-marketplace order reports from the Selling Partner API, normalized to USD.
// @contact.name API Support
// @contact.email support@ordersretriever.com
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

	// Load the conversion rate table and wrap it in the Redis cache when one
	// is configured.
	table, err := ratesadapters.LoadTable(cfg.RatesFile)
	if err != nil {
		l.Fatal("Failed to load rates file", zap.Error(err))
	}
	l.Info("Rates table loaded", zap.String("file", cfg.RatesFile), zap.Int("entries", len(table)))

	var rateRepo ratesports.Repository = ratesadapters.NewStaticRepository(table)
	var redisCache cache.Cache
	if cfg.RedisURL != "" {
		redisCache, err = cache.NewRedisAdapter(cfg.RedisURL)
		if err != nil {
			l.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisCache.Close()

		ttl := time.Duration(cfg.RateCacheTTLSeconds) * time.Second
		rateRepo = ratesadapters.NewCachedRepository(rateRepo, redisCache, ttl)
		l.Info("Rate cache enabled", zap.Duration("ttl", ttl))
	}
	converter := ratesservice.NewConverter(rateRepo)

	// Each configured region gets its own limiter and adapter; regions never
	// share a pacing budget.
	pause := time.Duration(cfg.Throttle.RequestPauseMs) * time.Millisecond
	cooldown := time.Duration(cfg.Throttle.BurstPauseMs) * time.Millisecond

	regionConfigs := []struct {
		region      domain.Region
		endpoint    string
		accessToken string
		probeCode   string
	}{
		{domain.RegionNorthAmerica, cfg.SellingPartner.NAEndpoint, cfg.SellingPartner.NAAccessToken, "US"},
		{domain.RegionEurope, cfg.SellingPartner.EUEndpoint, cfg.SellingPartner.EUAccessToken, "DE"},
	}

	regions := make(map[domain.Region]retrievalservice.RegionResources)
	for _, rc := range regionConfigs {
		if rc.accessToken == "" {
			continue
		}

		limiter := ratelimit.New(pause, cfg.Throttle.RequestBurstSize, cooldown)
		provider := retrievaladapters.NewSellingPartnerAdapter(limiter)
		creds := domain.RegionCredentials{Endpoint: rc.endpoint, AccessToken: rc.accessToken}
		regions[rc.region] = retrievalservice.RegionResources{
			Credentials: creds,
			Provider:    provider,
			Limiter:     limiter,
		}

		// Startup probe only; a region that fails here can still recover.
		probe, _ := domain.MarketplaceByCode(rc.probeCode)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := provider.CheckAccess(ctx, creds, probe); err != nil {
			l.Warn("Region access check failed", zap.String("region", string(rc.region)), zap.Error(err))
		} else {
			l.Info("Region access verified", zap.String("region", string(rc.region)))
		}
		cancel()
	}
	if len(regions) == 0 {
		l.Warn("No region credentials configured, every retrieval will fail")
	}

	retriever := retrievalservice.NewRetriever(regions, converter, cfg.ReportTimezone)
	retrievalHdl := retrievalhandler.NewRetrievalHandler(retriever)
	healthHdl := retrievalhandler.NewHealthHandler(redisCache)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/orders/:marketplace", retrievalHdl.GetOrders)
	srv.App.Get("/health", healthHdl.GetHealth)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
