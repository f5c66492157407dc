// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
)

// Layer names one child supervisor of the tree.
type Layer string

const (
	LayerData      Layer = "data-layer"
	LayerMessaging Layer = "messaging-layer"
	LayerAPI       Layer = "api-layer"
)

// layers is the start order under the root.
var layers = []Layer{LayerData, LayerMessaging, LayerAPI}

// TreeConfig tunes restart behavior. Zero fields take DefaultTreeConfig values.
type TreeConfig struct {
	// Failures counted before the supervisor backs off.
	FailureThreshold float64

	// Seconds for the failure count to decay.
	FailureDecay float64

	FailureBackoff time.Duration

	// ShutdownTimeout bounds how long each service gets to return after
	// its context is canceled.
	ShutdownTimeout time.Duration
}

// DefaultTreeConfig returns suture's own defaults.
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		FailureThreshold: 5.0,
		FailureDecay:     30.0,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

func (c TreeConfig) withDefaults() TreeConfig {
	d := DefaultTreeConfig()
	if c.FailureThreshold == 0 {
		c.FailureThreshold = d.FailureThreshold
	}
	if c.FailureDecay == 0 {
		c.FailureDecay = d.FailureDecay
	}
	if c.FailureBackoff == 0 {
		c.FailureBackoff = d.FailureBackoff
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	return c
}

func (c TreeConfig) spec(hook suture.EventHook) suture.Spec {
	return suture.Spec{
		EventHook:        hook,
		FailureThreshold: c.FailureThreshold,
		FailureDecay:     c.FailureDecay,
		FailureBackoff:   c.FailureBackoff,
		Timeout:          c.ShutdownTimeout,
	}
}

// SupervisorTree is a root supervisor with one child per Layer. A subscriber
// crashing in the messaging layer restarts there while the API layer keeps
// answering from the cached snapshot.
type SupervisorTree struct {
	root   *suture.Supervisor
	layers map[Layer]*suture.Supervisor
	logger *slog.Logger
	config TreeConfig

	mu       sync.Mutex
	services map[Layer][]string
}

// NewSupervisorTree builds the root "storefront" supervisor and its layers.
// Supervisor events are logged through sutureslog.
func NewSupervisorTree(logger *slog.Logger, config TreeConfig) (*SupervisorTree, error) {
	if logger == nil {
		return nil, fmt.Errorf("supervisor tree: nil logger")
	}
	config = config.withDefaults()

	// Children inherit the root's EventHook once added.
	root := suture.New("storefront", config.spec((&sutureslog.Handler{Logger: logger}).MustHook()))

	t := &SupervisorTree{
		root:     root,
		layers:   make(map[Layer]*suture.Supervisor, len(layers)),
		logger:   logger,
		config:   config,
		services: make(map[Layer][]string, len(layers)),
	}
	for _, layer := range layers {
		child := suture.New(string(layer), config.spec(nil))
		root.Add(child)
		t.layers[layer] = child
	}
	return t, nil
}

// Root returns the root supervisor.
func (t *SupervisorTree) Root() *suture.Supervisor {
	return t.root
}

// Add registers svc under layer.
func (t *SupervisorTree) Add(layer Layer, svc suture.Service) suture.ServiceToken {
	sup, ok := t.layers[layer]
	if !ok {
		panic(fmt.Sprintf("supervisor: unknown layer %q", layer))
	}

	name := fmt.Sprint(svc)
	t.mu.Lock()
	t.services[layer] = append(t.services[layer], name)
	t.mu.Unlock()

	t.logger.Debug("service added", "layer", string(layer), "service", name)
	return sup.Add(svc)
}

func (t *SupervisorTree) AddDataService(svc suture.Service) suture.ServiceToken {
	return t.Add(LayerData, svc)
}

func (t *SupervisorTree) AddMessagingService(svc suture.Service) suture.ServiceToken {
	return t.Add(LayerMessaging, svc)
}

func (t *SupervisorTree) AddAPIService(svc suture.Service) suture.ServiceToken {
	return t.Add(LayerAPI, svc)
}

// Services lists the names registered in layer, in the order added.
func (t *SupervisorTree) Services(layer Layer) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.services[layer]...)
}

// Serve blocks until ctx is canceled.
func (t *SupervisorTree) Serve(ctx context.Context) error {
	return t.root.Serve(ctx)
}

// ServeBackground runs the tree in a goroutine. The channel receives the
// result once the root stops.
func (t *SupervisorTree) ServeBackground(ctx context.Context) <-chan error {
	return t.root.ServeBackground(ctx)
}

// UnstoppedServiceReport lists services that outlived ShutdownTimeout.
func (t *SupervisorTree) UnstoppedServiceReport() ([]suture.UnstoppedService, error) {
	return t.root.UnstoppedServiceReport()
}
