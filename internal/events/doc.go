// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

/*
Package events carries catalog change notifications over watermill.

Whatever writes the catalog publishes a CatalogUpdated message on the
catalog.updated topic. Each service instance runs an Invalidator, a
suture.Service that drops the cached catalog snapshot for every message it
receives, so the next query reloads from the store.

	sub, err := events.NewNATSSubscriber(cfg.NATS, logger)
	inv := events.NewInvalidator(sub, cfg.NATS.Topic, snapshots, logger)
	tree.AddMessagingService(inv)

NewNATSSubscriber needs the "nats" build tag. Tests use watermill's
in-process gochannel pub/sub.
*/
package events
