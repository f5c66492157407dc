// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package events

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/tomtom215/storefront/internal/logging"
)

type recordingInvalidator struct {
	calls chan string
}

func newRecordingInvalidator() *recordingInvalidator {
	return &recordingInvalidator{calls: make(chan string, 16)}
}

func (r *recordingInvalidator) Invalidate(source string) { r.calls <- source }

func newPubSub(t *testing.T) *gochannel.GoChannel {
	t.Helper()
	ps := gochannel.NewGoChannel(gochannel.Config{Persistent: true}, watermill.NopLogger{})
	t.Cleanup(func() { _ = ps.Close() })
	return ps
}

func waitCall(t *testing.T, r *recordingInvalidator) string {
	t.Helper()
	select {
	case src := <-r.calls:
		return src
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for invalidation")
		return ""
	}
}

func TestInvalidator_InvalidatesPerMessage(t *testing.T) {
	t.Parallel()

	ps := newPubSub(t)
	target := newRecordingInvalidator()
	inv := NewInvalidator(ps, TopicCatalogUpdated, target,
		logging.NewWatermillLogger(logging.NewTestLogger(io.Discard)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- inv.Serve(ctx) }()

	for _, reason := range []string{"seed", "price-update"} {
		if err := PublishCatalogUpdated(ps, TopicCatalogUpdated, reason); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}

	for i := 0; i < 2; i++ {
		if src := waitCall(t, target); src != InvalidationSource {
			t.Errorf("source = %q, want %q", src, InvalidationSource)
		}
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestInvalidator_MalformedPayloadStillInvalidates(t *testing.T) {
	t.Parallel()

	ps := newPubSub(t)
	target := newRecordingInvalidator()
	inv := NewInvalidator(ps, "catalog.test.malformed", target, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = inv.Serve(ctx) }()

	if err := ps.Publish("catalog.test.malformed", message.NewMessage(watermill.NewUUID(), []byte("{oops"))); err != nil {
		t.Fatal(err)
	}
	waitCall(t, target)
}

func TestInvalidator_ClosedSubscription(t *testing.T) {
	t.Parallel()

	ps := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	inv := NewInvalidator(ps, TopicCatalogUpdated, newRecordingInvalidator(), nil)

	done := make(chan error, 1)
	go func() { done <- inv.Serve(context.Background()) }()

	// Close may race with Subscribe; either way Serve must return an error.
	time.Sleep(50 * time.Millisecond)
	if err := ps.Close(); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-done:
		if err == nil {
			t.Error("Serve returned nil after subscription closed")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after close")
	}
}

func TestInvalidator_String(t *testing.T) {
	t.Parallel()

	inv := NewInvalidator(nil, "catalog.updated", newRecordingInvalidator(), nil)
	if got := inv.String(); got != "catalog-invalidator(catalog.updated)" {
		t.Errorf("String() = %q", got)
	}
}
