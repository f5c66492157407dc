// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// mockService implements suture.Service. It fails the first failures calls
// to Serve, then runs until its context is canceled.
type mockService struct {
	name     string
	failures int32
	starts   atomic.Int32
	started  chan struct{}
}

func newMockService(name string, failures int32) *mockService {
	return &mockService{name: name, failures: failures, started: make(chan struct{}, 64)}
}

func (m *mockService) Serve(ctx context.Context) error {
	n := m.starts.Add(1)
	select {
	case m.started <- struct{}{}:
	default:
	}
	if n <= m.failures {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string { return m.name }
