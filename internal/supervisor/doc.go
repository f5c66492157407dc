// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

/*
Package supervisor provides process supervision for the storefront service
using suture v4.

# Overview

Services are grouped into three layers so a failure in one does not take the
others down:

	RootSupervisor ("storefront")
	├── DataSupervisor ("data-layer")
	│   └── WarmService (snapshot warmer)
	├── MessagingSupervisor ("messaging-layer")
	│   └── events.Invalidator (if NATS_ENABLED, build tag: nats)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A subscriber that loses its NATS connection restarts inside the messaging
layer while the API keeps answering from the cached snapshot.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewWarmService(provider, warmCfg, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(cfg.Server.Addr(), server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

# Failure Handling

Each failure increments a counter that decays over FailureDecay seconds.
Above FailureThreshold the supervisor waits FailureBackoff before the next
restart. Supervisor events are logged through sutureslog and the zerolog
slog adapter.

Return behavior expected from services:
  - Return an error: crashed, restart
  - Return ctx.Err() once ctx is canceled: shutdown, no restart

# What Is NOT Supervised

The catalog store (file, BadgerDB or DuckDB) is a library, not a service.
Its failures surface as load errors and are isolated by the store's circuit
breaker.

# Debugging Shutdown Issues

If services don't stop within the timeout:

	report, _ := tree.UnstoppedServiceReport()
	for _, svc := range report {
	    logging.Warn().Str("service", svc.Name).Msg("service did not stop")
	}
*/
package supervisor
