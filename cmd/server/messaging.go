// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package main

import (
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/storefront/internal/config"
	"github.com/tomtom215/storefront/internal/events"
	"github.com/tomtom215/storefront/internal/logging"
)

// messaging holds the NATS endpoints used for cross-instance invalidation.
type messaging struct {
	subscriber message.Subscriber
	publisher  message.Publisher
}

// initMessaging connects to NATS when enabled. It returns nil when NATS is
// disabled or was not compiled in.
func initMessaging(cfg *config.Config) (*messaging, error) {
	if !cfg.NATS.Enabled {
		logging.Info().Msg("NATS disabled, cache invalidation is local only")
		return nil, nil
	}

	wmLogger := logging.NewWatermillLogger(logging.WithComponent("nats"))

	sub, err := events.NewNATSSubscriber(cfg.NATS, wmLogger)
	if errors.Is(err, events.ErrNATSNotEnabled) {
		logging.Warn().Msg("NATS_ENABLED=true but NATS support not compiled (build with -tags nats)")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("nats subscriber: %w", err)
	}

	pub, err := events.NewNATSPublisher(cfg.NATS, wmLogger)
	if err != nil {
		if closeErr := sub.Close(); closeErr != nil {
			logging.Error().Err(closeErr).Msg("Error closing NATS subscriber")
		}
		return nil, fmt.Errorf("nats publisher: %w", err)
	}

	logging.Info().
		Str("url", cfg.NATS.URL).
		Str("topic", cfg.NATS.Topic).
		Bool("jetstream", cfg.NATS.JetStream).
		Msg("NATS messaging initialized")

	return &messaging{subscriber: sub, publisher: pub}, nil
}

// Close closes the publisher and subscriber.
func (m *messaging) Close() error {
	if m == nil {
		return nil
	}
	return errors.Join(m.publisher.Close(), m.subscriber.Close())
}
