// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/goccy/go-json"

	"github.com/tomtom215/storefront/internal/config"
	"github.com/tomtom215/storefront/internal/logging"
	"github.com/tomtom215/storefront/internal/models"
)

var duckdbSchema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		position    INTEGER PRIMARY KEY,
		id          VARCHAR NOT NULL,
		name        VARCHAR NOT NULL,
		description VARCHAR NOT NULL DEFAULT '',
		price       DOUBLE NOT NULL,
		category    VARCHAR NOT NULL DEFAULT '',
		brand       VARCHAR NOT NULL DEFAULT '',
		rating      DOUBLE NOT NULL DEFAULT 0,
		in_stock    BOOLEAN NOT NULL,
		image_url   VARCHAR NOT NULL DEFAULT '',
		tags        VARCHAR NOT NULL DEFAULT '[]'
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		position    INTEGER PRIMARY KEY,
		order_id    VARCHAR NOT NULL,
		order_date  VARCHAR NOT NULL DEFAULT '',
		customer_id VARCHAR NOT NULL DEFAULT '',
		total       DOUBLE NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_position INTEGER NOT NULL,
		item_position  INTEGER NOT NULL,
		product_id     VARCHAR NOT NULL,
		quantity       INTEGER NOT NULL,
		price          DOUBLE NOT NULL DEFAULT 0,
		PRIMARY KEY (order_position, item_position)
	)`,
}

// DuckDBRepository stores the catalog in DuckDB tables.
type DuckDBRepository struct {
	conn *sql.DB
}

// OpenDuckDB opens the database at path (or an in-memory database) and
// creates the schema.
func OpenDuckDB(ctx context.Context, path string, inMemory bool) (*DuckDBRepository, error) {
	dsn := path
	if inMemory {
		dsn = ""
	}
	dsn += "?autoinstall_known_extensions=false&autoload_known_extensions=false"

	conn, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	r := &DuckDBRepository{conn: conn}
	if err := r.Migrate(ctx); err != nil {
		closeQuietly(conn)
		return nil, err
	}
	return r, nil
}

func (r *DuckDBRepository) Backend() string { return config.BackendDuckDB }

// Migrate creates missing tables.
func (r *DuckDBRepository) Migrate(ctx context.Context) error {
	for _, stmt := range duckdbSchema {
		if _, err := r.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate duckdb: %w", err)
		}
	}
	return nil
}

// Import replaces every product and order inside one transaction.
func (r *DuckDBRepository) Import(ctx context.Context, products []models.Product, orders []models.Order) (err error) {
	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Warn().Err(rbErr).Msg("duckdb import rollback failed")
			}
		}
	}()

	for _, table := range []string{"order_items", "orders", "products"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err = insertProducts(ctx, tx, products); err != nil {
		return err
	}
	if err = insertOrders(ctx, tx, orders); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func insertProducts(ctx context.Context, tx *sql.Tx, products []models.Product) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO products
		(position, id, name, description, price, category, brand, rating, in_stock, image_url, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare product insert: %w", err)
	}
	defer closeQuietly(stmt)

	for i := range products {
		p := &products[i]
		tags, err := json.Marshal(nonNilTags(p.Tags))
		if err != nil {
			return fmt.Errorf("encode tags for %s: %w", p.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, i, p.ID, p.Name, p.Description, p.Price,
			p.Category, p.Brand, p.Rating, p.InStock, p.ImageURL, string(tags)); err != nil {
			return fmt.Errorf("insert product %s: %w", p.ID, err)
		}
	}
	return nil
}

func insertOrders(ctx context.Context, tx *sql.Tx, orders []models.Order) error {
	orderStmt, err := tx.PrepareContext(ctx, `INSERT INTO orders
		(position, order_id, order_date, customer_id, total) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare order insert: %w", err)
	}
	defer closeQuietly(orderStmt)

	itemStmt, err := tx.PrepareContext(ctx, `INSERT INTO order_items
		(order_position, item_position, product_id, quantity, price) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare order item insert: %w", err)
	}
	defer closeQuietly(itemStmt)

	for i := range orders {
		o := &orders[i]
		if _, err := orderStmt.ExecContext(ctx, i, o.OrderID, o.Date, o.CustomerID, o.Total); err != nil {
			return fmt.Errorf("insert order %s: %w", o.OrderID, err)
		}
		for j, item := range o.Items {
			if _, err := itemStmt.ExecContext(ctx, i, j, item.ProductID, item.Quantity, item.Price); err != nil {
				return fmt.Errorf("insert item %d of order %s: %w", j, o.OrderID, err)
			}
		}
	}
	return nil
}

// LoadProducts returns all products in import order.
func (r *DuckDBRepository) LoadProducts(ctx context.Context) ([]models.Product, error) {
	return timedLoad(config.BackendDuckDB, "products", func() ([]models.Product, error) {
		rows, err := r.conn.QueryContext(ctx, `SELECT id, name, description, price, category, brand,
			rating, in_stock, image_url, tags FROM products ORDER BY position`)
		if err != nil {
			return nil, fmt.Errorf("query products: %w", err)
		}
		defer closeQuietly(rows)

		products := make([]models.Product, 0)
		for rows.Next() {
			var p models.Product
			var tags string
			if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
				&p.Brand, &p.Rating, &p.InStock, &p.ImageURL, &tags); err != nil {
				return nil, fmt.Errorf("scan product: %w", err)
			}
			if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
				return nil, fmt.Errorf("decode tags for %s: %w", p.ID, err)
			}
			products = append(products, p)
		}
		return products, rows.Err()
	})
}

// LoadOrders returns all orders with their items, in import order.
func (r *DuckDBRepository) LoadOrders(ctx context.Context) ([]models.Order, error) {
	return timedLoad(config.BackendDuckDB, "orders", func() ([]models.Order, error) {
		rows, err := r.conn.QueryContext(ctx, `SELECT o.position, o.order_id, o.order_date, o.customer_id, o.total,
			i.product_id, i.quantity, i.price
			FROM orders o LEFT JOIN order_items i ON i.order_position = o.position
			ORDER BY o.position, i.item_position`)
		if err != nil {
			return nil, fmt.Errorf("query orders: %w", err)
		}
		defer closeQuietly(rows)

		orders := make([]models.Order, 0)
		lastPos := -1
		for rows.Next() {
			var (
				pos       int
				o         models.Order
				productID sql.NullString
				quantity  sql.NullInt64
				price     sql.NullFloat64
			)
			if err := rows.Scan(&pos, &o.OrderID, &o.Date, &o.CustomerID, &o.Total,
				&productID, &quantity, &price); err != nil {
				return nil, fmt.Errorf("scan order: %w", err)
			}
			if pos != lastPos {
				o.Items = make([]models.OrderItem, 0)
				orders = append(orders, o)
				lastPos = pos
			}
			if productID.Valid {
				cur := &orders[len(orders)-1]
				cur.Items = append(cur.Items, models.OrderItem{
					ProductID: productID.String,
					Quantity:  int(quantity.Int64),
					Price:     price.Float64,
				})
			}
		}
		return orders, rows.Err()
	})
}

// Close closes the connection pool.
func (r *DuckDBRepository) Close() error {
	return r.conn.Close()
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

type closer interface{ Close() error }

func closeQuietly(c closer) {
	if err := c.Close(); err != nil {
		logging.Debug().Err(err).Msg("close failed")
	}
}
