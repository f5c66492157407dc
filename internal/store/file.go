// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/tomtom215/storefront/internal/config"
	"github.com/tomtom215/storefront/internal/models"
)

// File names inside a data or seed directory.
const (
	ProductsFile = "products.json"
	OrdersFile   = "orders.json"
)

// FileRepository reads the catalog from JSON files on every load.
// Caching is the SnapshotProvider's job.
type FileRepository struct {
	dir string
}

// NewFileRepository reads from dir/products.json and dir/orders.json.
func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

func (r *FileRepository) Backend() string { return config.BackendFile }

// LoadProducts decodes products.json.
func (r *FileRepository) LoadProducts(ctx context.Context) ([]models.Product, error) {
	return timedLoad(config.BackendFile, "products", func() ([]models.Product, error) {
		var products []models.Product
		if err := readJSON(ctx, filepath.Join(r.dir, ProductsFile), &products); err != nil {
			return nil, err
		}
		return products, nil
	})
}

// LoadOrders decodes orders.json.
func (r *FileRepository) LoadOrders(ctx context.Context) ([]models.Order, error) {
	return timedLoad(config.BackendFile, "orders", func() ([]models.Order, error) {
		var orders []models.Order
		if err := readJSON(ctx, filepath.Join(r.dir, OrdersFile), &orders); err != nil {
			return nil, err
		}
		return orders, nil
	})
}

func (r *FileRepository) Close() error { return nil }

func readJSON(ctx context.Context, path string, v interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// WriteJSONFiles writes products and orders into dir in the FileRepository layout.
func WriteJSONFiles(dir string, products []models.Product, orders []models.Order) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	for name, v := range map[string]interface{}{ProductsFile: products, OrdersFile: orders} {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}
