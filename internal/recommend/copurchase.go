// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package recommend

import (
	"sort"

	"github.com/tomtom215/storefront/internal/models"
)

// DefaultLimit is the number of recommendations returned when none is requested.
const DefaultLimit = 4

// CoPurchase returns up to limit products most often bought together with
// targetID, each carrying its CoPurchaseCount. A non-positive limit returns
// an empty slice.
func CoPurchase(orders []models.Order, products []models.Product, targetID string, limit int) []models.Product {
	ranked := RankCoPurchases(orders, targetID)
	if limit <= 0 {
		return []models.Product{}
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return resolve(ranked, indexProducts(products))
}

// RankCoPurchases scores every product that shares an order with targetID.
// The result is sorted by descending score; equal scores keep first-encounter order.
func RankCoPurchases(orders []models.Order, targetID string) []ScoredItem {
	positions := make(map[string]int)
	var items []ScoredItem

	for _, order := range orders {
		if !order.Contains(targetID) {
			continue
		}
		for _, item := range order.Items {
			if item.ProductID == targetID {
				continue
			}
			if pos, ok := positions[item.ProductID]; ok {
				items[pos].Score += item.Quantity
				continue
			}
			positions[item.ProductID] = len(items)
			items = append(items, ScoredItem{
				ProductID: item.ProductID,
				Score:     item.Quantity,
				firstSeen: len(items),
			})
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].firstSeen < items[j].firstSeen
	})

	return items
}

// indexProducts maps ID to product. The first product with a given ID wins.
func indexProducts(products []models.Product) map[string]models.Product {
	index := make(map[string]models.Product, len(products))
	for _, p := range products {
		if _, exists := index[p.ID]; !exists {
			index[p.ID] = p
		}
	}
	return index
}

func resolve(ranked []ScoredItem, index map[string]models.Product) []models.Product {
	out := make([]models.Product, 0, len(ranked))
	for _, item := range ranked {
		p, ok := index[item.ProductID]
		if !ok {
			continue
		}
		cp := p.Clone()
		cp.CoPurchaseCount = item.Score
		out = append(out, cp)
	}
	return out
}
