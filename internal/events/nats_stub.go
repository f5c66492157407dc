// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

//go:build !nats

package events

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/storefront/internal/config"
)

// NewNATSSubscriber returns ErrNATSNotEnabled in builds without the nats tag.
func NewNATSSubscriber(_ config.NATSConfig, _ watermill.LoggerAdapter) (message.Subscriber, error) {
	return nil, ErrNATSNotEnabled
}

// NewNATSPublisher returns ErrNATSNotEnabled in builds without the nats tag.
func NewNATSPublisher(_ config.NATSConfig, _ watermill.LoggerAdapter) (message.Publisher, error) {
	return nil, ErrNATSNotEnabled
}
