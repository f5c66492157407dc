// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

/*
Package main is the entry point for the storefront server.

The server answers product listing queries (filter, sort, facets and
pagination over a catalog snapshot) and co-purchase recommendations derived
from order history.

# Application Architecture

	RootSupervisor ("storefront")
	├── DataSupervisor ("data-layer")
	│   └── WarmService (snapshot warmer)
	├── MessagingSupervisor ("messaging-layer")
	│   └── Invalidator (optional, -tags nats)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Store: file, BadgerDB or DuckDB backend, optionally seeded from JSON
 4. Circuit breaker and snapshot cache around the store
 5. Recommendation engine and HTTP handlers
 6. NATS subscriber and publisher (when enabled)
 7. Supervisor Tree: Suture v4 process supervision

# Configuration

	# Server
	HTTP_PORT=3000
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Store
	STORE_BACKEND=file           # file, badger or duckdb
	STORE_DATA_DIR=data          # products.json and orders.json
	STORE_SEED_DIR=              # import JSON into badger/duckdb at startup

	# Cache
	CACHE_SNAPSHOT_TTL=1m
	CACHE_WARM_INTERVAL=45s

	# Events
	NATS_ENABLED=false
	NATS_URL=nats://localhost:4222
	NATS_TOPIC=catalog.updated

CONFIG_PATH points at a YAML file; environment variables take precedence.

# Build Tags

	go build ./cmd/server                # Standard build
	go build -tags nats ./cmd/server     # Enable NATS cache invalidation

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests within SHUTDOWN_TIMEOUT, then the store and cache are closed.
*/
package main
