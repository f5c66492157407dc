// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

/*
Package models defines the catalog data types shared by the store, catalog,
recommend and api packages.

# Wire Format

Product and Order use the camelCase field names of the catalog data files
(products.json, orders.json) so the same structs decode the seed files, the
badger records and the HTTP responses.

Derived fields (PurchaseCount, CoPurchaseCount) are computed per query and are
never written back to a store.

# Immutability

Catalog slices loaded from a store are shared between concurrent requests.
Code that needs to change a Product works on a copy (see Product.Clone).
*/
package models
