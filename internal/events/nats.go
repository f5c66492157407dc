// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

//go:build nats

package events

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	natsgo "github.com/nats-io/nats.go"

	"github.com/tomtom215/storefront/internal/config"
)

const (
	natsMaxReconnects = -1
	natsReconnectWait = 2 * time.Second
	natsAckWait       = 30 * time.Second
	natsCloseTimeout  = 10 * time.Second
)

func natsOptions(logger watermill.LoggerAdapter) []natsgo.Option {
	return []natsgo.Option{
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(natsMaxReconnects),
		natsgo.ReconnectWait(natsReconnectWait),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{"url": nc.ConnectedUrl()})
		}),
	}
}

func jetStreamConfig(cfg config.NATSConfig) wmNats.JetStreamConfig {
	if !cfg.JetStream {
		return wmNats.JetStreamConfig{Disabled: true}
	}
	return wmNats.JetStreamConfig{
		Disabled:      false,
		AutoProvision: false,
		AckAsync:      false,
		SubscribeOptions: []natsgo.SubOpt{
			natsgo.BindStream(cfg.StreamName),
			natsgo.DeliverNew(),
			natsgo.AckWait(natsAckWait),
		},
	}
}

// NewNATSSubscriber subscribes without a queue group so every instance
// receives every invalidation.
func NewNATSSubscriber(cfg config.NATSConfig, logger watermill.LoggerAdapter) (message.Subscriber, error) {
	if logger == nil {
		logger = watermill.NopLogger{}
	}

	sub, err := wmNats.NewSubscriber(wmNats.SubscriberConfig{
		URL:              cfg.URL,
		SubscribersCount: 1,
		AckWaitTimeout:   natsAckWait,
		CloseTimeout:     natsCloseTimeout,
		NatsOptions:      natsOptions(logger),
		Unmarshaler:      &wmNats.NATSMarshaler{},
		JetStream:        jetStreamConfig(cfg),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create NATS subscriber: %w", err)
	}
	return sub, nil
}

// NewNATSPublisher builds a publisher for catalog writers and tooling.
func NewNATSPublisher(cfg config.NATSConfig, logger watermill.LoggerAdapter) (message.Publisher, error) {
	if logger == nil {
		logger = watermill.NopLogger{}
	}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         cfg.URL,
		NatsOptions: natsOptions(logger),
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream:   jetStreamConfig(cfg),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create NATS publisher: %w", err)
	}
	return pub, nil
}
