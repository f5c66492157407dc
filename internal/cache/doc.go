// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

/*
Package cache provides a thread-safe in-memory TTL cache.

The store layer keeps one catalog snapshot (products plus orders) in the cache
so that bursts of product and recommendation queries share a single load from
the backing repository.

# Clock

Expiration is computed against an injected Clock. Production code uses
RealClock; tests drive a FakeClock forward instead of sleeping:

	clk := cache.NewFakeClock(time.Unix(0, 0))
	c := cache.New[catalog.Snapshot](time.Minute, cache.WithClock(clk))
	c.Set("catalog", snapshot)
	clk.Advance(61 * time.Second)
	_, ok := c.Get("catalog") // ok == false

# Expiration

Entries expire lazily on Get. A background sweep can be enabled with
WithCleanupInterval; it stops when Close is called.
*/
package cache
