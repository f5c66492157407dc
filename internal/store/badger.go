// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package store

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/storefront/internal/config"
	"github.com/tomtom215/storefront/internal/models"
)

// Key prefixes. Keys end in a zero-padded position so prefix iteration
// returns records in import order.
const (
	productKeyPrefix = "product:"
	orderKeyPrefix   = "order:"
)

// BadgerRepository stores the catalog in BadgerDB.
type BadgerRepository struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a BadgerDB at path. With inMemory set the
// path is ignored and nothing touches disk.
func OpenBadger(path string, inMemory bool) (*BadgerRepository, error) {
	opts := badger.DefaultOptions(path)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerRepository{db: db}, nil
}

// NewBadgerRepository wraps an already open database.
func NewBadgerRepository(db *badger.DB) *BadgerRepository {
	return &BadgerRepository{db: db}
}

func (r *BadgerRepository) Backend() string { return config.BackendBadger }

// Import replaces every product and order with the given records.
//
// Not atomic: existing records are dropped before the batch is written, so a
// canceled context or failed flush leaves the store empty or partly written.
// Callers seed at startup and re-run Import to recover.
func (r *BadgerRepository) Import(ctx context.Context, products []models.Product, orders []models.Order) error {
	if err := r.db.DropPrefix([]byte(productKeyPrefix), []byte(orderKeyPrefix)); err != nil {
		return fmt.Errorf("clear catalog: %w", err)
	}

	wb := r.db.NewWriteBatch()
	defer wb.Cancel()

	for i := range products {
		if err := ctx.Err(); err != nil {
			return err
		}
		p := products[i]
		p.PurchaseCount, p.CoPurchaseCount = 0, 0
		if err := setJSON(wb, positionKey(productKeyPrefix, i), p); err != nil {
			return fmt.Errorf("product %s: %w", p.ID, err)
		}
	}
	for i := range orders {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := setJSON(wb, positionKey(orderKeyPrefix, i), orders[i]); err != nil {
			return fmt.Errorf("order %s: %w", orders[i].OrderID, err)
		}
	}

	if err := wb.Flush(); err != nil {
		return fmt.Errorf("flush catalog import: %w", err)
	}
	return nil
}

// LoadProducts returns all products in import order.
func (r *BadgerRepository) LoadProducts(ctx context.Context) ([]models.Product, error) {
	return timedLoad(config.BackendBadger, "products", func() ([]models.Product, error) {
		return scanPrefix[models.Product](ctx, r.db, productKeyPrefix)
	})
}

// LoadOrders returns all orders in import order.
func (r *BadgerRepository) LoadOrders(ctx context.Context) ([]models.Order, error) {
	return timedLoad(config.BackendBadger, "orders", func() ([]models.Order, error) {
		return scanPrefix[models.Order](ctx, r.db, orderKeyPrefix)
	})
}

// Close closes the database.
func (r *BadgerRepository) Close() error {
	return r.db.Close()
}

func positionKey(prefix string, pos int) []byte {
	return []byte(fmt.Sprintf("%s%010d", prefix, pos))
}

func setJSON(wb *badger.WriteBatch, key []byte, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return wb.Set(key, data)
}

func scanPrefix[T any](ctx context.Context, db *badger.DB, prefix string) ([]T, error) {
	out := make([]T, 0)
	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			var v T
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &v)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", item.Key(), err)
			}
			out = append(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
