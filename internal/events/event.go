// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

// TopicCatalogUpdated is the default topic for catalog change notifications.
const TopicCatalogUpdated = "catalog.updated"

// ErrNATSNotEnabled is returned by the NATS constructors in builds without
// the "nats" tag.
var ErrNATSNotEnabled = errors.New("NATS support not enabled (build with -tags nats)")

// CatalogUpdated announces that products or orders changed.
type CatalogUpdated struct {
	EventID   string    `json:"event_id"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewCatalogUpdatedMessage builds a watermill message carrying a
// CatalogUpdated payload. The message UUID doubles as the event ID.
func NewCatalogUpdatedMessage(reason string) (*message.Message, error) {
	id := watermill.NewUUID()
	payload, err := json.Marshal(CatalogUpdated{
		EventID:   id,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal catalog event: %w", err)
	}
	msg := message.NewMessage(id, payload)
	msg.Metadata.Set("reason", reason)
	return msg, nil
}

// PublishCatalogUpdated publishes one CatalogUpdated message on topic.
func PublishCatalogUpdated(pub message.Publisher, topic, reason string) error {
	msg, err := NewCatalogUpdatedMessage(reason)
	if err != nil {
		return err
	}
	if err := pub.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}

// DecodeCatalogUpdated parses a message payload.
func DecodeCatalogUpdated(msg *message.Message) (CatalogUpdated, error) {
	var ev CatalogUpdated
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return CatalogUpdated{}, fmt.Errorf("unmarshal catalog event %s: %w", msg.UUID, err)
	}
	return ev, nil
}
