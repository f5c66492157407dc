// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/storefront/internal/api"
	"github.com/tomtom215/storefront/internal/cache"
	"github.com/tomtom215/storefront/internal/catalog"
	"github.com/tomtom215/storefront/internal/config"
	"github.com/tomtom215/storefront/internal/events"
	"github.com/tomtom215/storefront/internal/logging"
	"github.com/tomtom215/storefront/internal/recommend"
	"github.com/tomtom215/storefront/internal/store"
	"github.com/tomtom215/storefront/internal/supervisor"
	"github.com/tomtom215/storefront/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("backend", cfg.Store.Backend).
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Msg("Starting storefront with supervisor tree")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
		stop()
		os.Exit(1)
	}

	logging.Info().Msg("Server stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	repo, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	if cfg.Store.SeedDir != "" {
		if err := store.Seed(ctx, repo, cfg.Store.SeedDir); err != nil {
			return err
		}
		logging.Info().Str("seed_dir", cfg.Store.SeedDir).Msg("Store seeded")
	}

	snapshotCache := cache.New[catalog.Snapshot](cfg.Cache.SnapshotTTL, cache.WithCleanupInterval(cfg.Cache.CleanupInterval))
	defer snapshotCache.Close()

	provider := store.NewSnapshotProvider(store.NewBreakerRepository(repo, cfg.Breaker), snapshotCache, nil)

	engine, err := recommend.NewEngine(provider, &recommend.Config{
		DefaultLimit: cfg.API.DefaultRecommendationLimit,
		MaxLimit:     cfg.API.MaxRecommendationLimit,
	}, logging.WithComponent("recommend"))
	if err != nil {
		return err
	}

	handler := api.NewHandler(provider, engine, cfg)

	msg, err := initMessaging(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := msg.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing NATS connections")
		}
	}()
	if msg != nil {
		handler.SetEventPublisher(msg.publisher)
	}

	server := &http.Server{
		Handler:           api.NewRouter(handler, cfg).SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout + 5*time.Second

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeConfig)
	if err != nil {
		return err
	}

	tree.AddDataService(services.NewWarmService(provider, services.WarmServiceConfig{
		Interval: cfg.Cache.WarmInterval,
	}, logging.WithComponent("warmer")))

	if msg != nil {
		tree.AddMessagingService(events.NewInvalidator(
			msg.subscriber,
			cfg.NATS.Topic,
			provider,
			logging.NewWatermillLogger(logging.WithComponent("invalidator")),
		))
		logging.Info().Msg("Cache invalidator added to supervisor tree (messaging layer)")
	}

	tree.AddAPIService(services.NewHTTPServerService(cfg.Server.Addr(), server, cfg.Server.ShutdownTimeout))

	err = tree.Serve(ctx)

	report, reportErr := tree.UnstoppedServiceReport()
	if reportErr == nil {
		for _, svc := range report {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop within timeout")
		}
	}

	return err
}
