// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/storefront/internal/metrics"
)

// InvalidationSource labels invalidations triggered by this package.
const InvalidationSource = "event"

// SnapshotInvalidator is implemented by store.SnapshotProvider.
type SnapshotInvalidator interface {
	Invalidate(source string)
}

// Invalidator drops the cached snapshot for every message on its topic.
type Invalidator struct {
	sub    message.Subscriber
	topic  string
	target SnapshotInvalidator
	logger watermill.LoggerAdapter
}

var _ suture.Service = (*Invalidator)(nil)

// NewInvalidator consumes topic from sub. A nil logger discards output.
func NewInvalidator(sub message.Subscriber, topic string, target SnapshotInvalidator, logger watermill.LoggerAdapter) *Invalidator {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	return &Invalidator{sub: sub, topic: topic, target: target, logger: logger}
}

// Serve implements suture.Service. It returns ctx.Err() on shutdown and an
// error when the subscription closes underneath it, so the supervisor
// restarts it.
func (i *Invalidator) Serve(ctx context.Context) error {
	messages, err := i.sub.Subscribe(ctx, i.topic)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", i.topic, err)
	}

	i.logger.Info("Catalog invalidator subscribed", watermill.LogFields{"topic": i.topic})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("subscription to %s closed", i.topic)
			}
			i.handle(msg)
		}
	}
}

// handle invalidates even when the payload is unreadable: any message on
// the topic means the catalog changed.
func (i *Invalidator) handle(msg *message.Message) {
	ev, err := DecodeCatalogUpdated(msg)
	metrics.RecordEventConsumed(i.topic, err)
	if err != nil {
		i.logger.Error("Malformed catalog event", err, watermill.LogFields{"message_uuid": msg.UUID})
	}

	i.target.Invalidate(InvalidationSource)
	msg.Ack()

	i.logger.Debug("Catalog event applied", watermill.LogFields{
		"message_uuid": msg.UUID,
		"reason":       ev.Reason,
	})
}

// String names the service in supervisor logs.
func (i *Invalidator) String() string {
	return "catalog-invalidator(" + i.topic + ")"
}
