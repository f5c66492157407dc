// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

/*
Package recommend produces "frequently bought together" recommendations from
order history.

# Algorithm

For a target product the engine:

 1. selects every order that contains the target,
 2. sums the quantities of every other product in those orders,
 3. ranks products by descending total, ties broken by the order in which a
    product was first encountered while scanning the orders,
 4. keeps the top N (default 4), and
 5. resolves each ID against the catalog, silently dropping IDs that no
    longer exist.

Step 5 runs after truncation, so a dangling ID inside the top N shrinks the
result instead of letting a lower-ranked product move up.

Unknown targets and products that were never bought together with anything
yield an empty result rather than an error.

# Usage

	engine := recommend.NewEngine(source, recommend.DefaultConfig(), logger)
	resp, err := engine.Recommend(ctx, recommend.Request{ProductID: "42"})

CoPurchase exposes the same computation as a pure function over explicit
order and product slices.
*/
package recommend
