// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package catalog

import (
	"strings"

	"github.com/tomtom215/storefront/internal/models"
)

// FilterProducts returns the products that satisfy every criterion in params,
// preserving input order.
func FilterProducts(products []models.Product, params models.FilterParams) []models.Product {
	m := newMatcher(params)

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if m.matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// matcher holds the normalized form of FilterParams so per-product checks
// do not repeat lowercasing and set construction.
type matcher struct {
	search       string
	categories   map[string]struct{}
	brands       map[string]struct{}
	tags         map[string]struct{}
	wantInStock  bool
	wantOutStock bool
	anyStock     bool
	minPrice     float64
	maxPrice     float64
}

func newMatcher(params models.FilterParams) matcher {
	m := matcher{
		search:     strings.ToLower(params.Search),
		categories: toSet(params.Categories, false),
		brands:     toSet(params.Brands, false),
		tags:       toSet(params.Tags, true),
		anyStock:   len(params.Availability) == 0,
	}
	for _, a := range params.Availability {
		switch a {
		case models.AvailabilityInStock:
			m.wantInStock = true
		case models.AvailabilityOutOfStock:
			m.wantOutStock = true
		}
	}
	m.minPrice, m.maxPrice = params.PriceRange()
	return m
}

func (m matcher) matches(p models.Product) bool {
	return m.matchesSearch(p) &&
		inSet(m.categories, p.Category) &&
		inSet(m.brands, p.Brand) &&
		m.matchesTags(p) &&
		m.matchesStock(p) &&
		p.Price >= m.minPrice && p.Price <= m.maxPrice
}

func (m matcher) matchesSearch(p models.Product) bool {
	if m.search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), m.search) ||
		strings.Contains(strings.ToLower(p.Description), m.search) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), m.search) {
			return true
		}
	}
	return false
}

func (m matcher) matchesTags(p models.Product) bool {
	if m.tags == nil {
		return true
	}
	for _, tag := range p.Tags {
		if _, ok := m.tags[strings.ToLower(tag)]; ok {
			return true
		}
	}
	return false
}

func (m matcher) matchesStock(p models.Product) bool {
	if m.anyStock {
		return true
	}
	return (m.wantInStock && p.InStock) || (m.wantOutStock && !p.InStock)
}

// toSet builds a lookup set; nil means "no restriction".
func toSet(values []string, fold bool) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if fold {
			v = strings.ToLower(v)
		}
		set[v] = struct{}{}
	}
	return set
}

func inSet(set map[string]struct{}, v string) bool {
	if set == nil {
		return true
	}
	_, ok := set[v]
	return ok
}
