// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

/*
Package services provides suture.Service wrappers for storefront components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve(ctx) error, returning ctx.Err() on shutdown and a real error when the
supervisor should restart it.

# Available Services

HTTP Server (HTTPServerService):
  - Binds the listener inside Serve, so a taken port is retried with backoff
  - Drains in-flight requests within the shutdown timeout

Snapshot Warmer (WarmService):
  - Loads the catalog snapshot at startup and on a fixed interval
  - Keeps readiness probes and first requests off the cold path
  - Load failures are logged, never fatal

The catalog invalidation subscriber (events.Invalidator) is already a
suture.Service and needs no wrapper.
*/
package services
