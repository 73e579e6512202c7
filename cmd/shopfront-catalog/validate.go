// Copyright 2026 The Shopfront Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/shopfront-foundation/shopfront/lib/catalog"
)

// validateItems checks the invariants the service maintains on every
// write. Open already rejects duplicate and non-positive ids, so the
// checks here cover field-level damage from manual edits.
func validateItems(items []catalog.Item) []string {
	var problems []string
	for _, item := range items {
		if item.Name == "" {
			problems = append(problems, fmt.Sprintf("item #%d has an empty name", item.ID))
		}
		if item.Price < 0 {
			problems = append(problems, fmt.Sprintf("item #%d has negative price %v", item.ID, item.Price))
		}
		if rounded := catalog.RoundPrice(item.Price); rounded != item.Price {
			problems = append(problems, fmt.Sprintf("item #%d price %v is not rounded to cents (stored form should be %v)", item.ID, item.Price, rounded))
		}
		if item.Stock != nil && *item.Stock < 0 {
			problems = append(problems, fmt.Sprintf("item #%d has negative stock %d", item.ID, *item.Stock))
		}
		if item.DiscountPercent < 0 || item.DiscountPercent > 100 {
			problems = append(problems, fmt.Sprintf("item #%d has discount %d outside [0, 100]", item.ID, item.DiscountPercent))
		}
		if item.RenderLink != nil && (item.RenderLink.SurfaceID.IsZero() || item.RenderLink.AnchorID.IsZero()) {
			problems = append(problems, fmt.Sprintf("item #%d has an incomplete render link", item.ID))
		}
	}
	return problems
}
