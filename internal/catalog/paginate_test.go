// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package catalog

import (
	"fmt"
	"math"
	"testing"

	"github.com/tomtom215/storefront/internal/models"
)

func makeProducts(n int) []models.Product {
	out := make([]models.Product, n)
	for i := range out {
		out[i] = models.Product{ID: fmt.Sprintf("p%d", i+1)}
	}
	return out
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		total    int
		page     int
		limit    int
		wantIDs  []string
		wantMeta models.Pagination
	}{
		{
			name: "first page", total: 3, page: 1, limit: 2,
			wantIDs:  []string{"p1", "p2"},
			wantMeta: models.Pagination{Page: 1, Limit: 2, Total: 3, TotalPages: 2, HasMore: true, HasPrevious: false},
		},
		{
			name: "last partial page", total: 3, page: 2, limit: 2,
			wantIDs:  []string{"p3"},
			wantMeta: models.Pagination{Page: 2, Limit: 2, Total: 3, TotalPages: 2, HasMore: false, HasPrevious: true},
		},
		{
			name: "exact fit", total: 4, page: 2, limit: 2,
			wantIDs:  []string{"p3", "p4"},
			wantMeta: models.Pagination{Page: 2, Limit: 2, Total: 4, TotalPages: 2, HasMore: false, HasPrevious: true},
		},
		{
			name: "beyond last page", total: 3, page: 5, limit: 2,
			wantIDs:  []string{},
			wantMeta: models.Pagination{Page: 5, Limit: 2, Total: 3, TotalPages: 2, HasMore: false, HasPrevious: true},
		},
		{
			name: "empty input", total: 0, page: 1, limit: 12,
			wantIDs:  []string{},
			wantMeta: models.Pagination{Page: 1, Limit: 12, Total: 0, TotalPages: 0, HasMore: false, HasPrevious: false},
		},
		{
			name: "25 items page 3 of 12", total: 25, page: 3, limit: 12,
			wantIDs:  []string{"p25"},
			wantMeta: models.Pagination{Page: 3, Limit: 12, Total: 25, TotalPages: 3, HasMore: false, HasPrevious: true},
		},
		{
			name: "page large enough to overflow the offset", total: 30, page: 1537228672809129303, limit: 12,
			wantIDs:  []string{},
			wantMeta: models.Pagination{Page: 1537228672809129303, Limit: 12, Total: 30, TotalPages: 3, HasMore: false, HasPrevious: true},
		},
		{
			name: "max int page", total: 5, page: math.MaxInt, limit: 2,
			wantIDs:  []string{},
			wantMeta: models.Pagination{Page: math.MaxInt, Limit: 2, Total: 5, TotalPages: 3, HasMore: false, HasPrevious: true},
		},
		{
			name: "zero limit", total: 3, page: 1, limit: 0,
			wantIDs:  []string{},
			wantMeta: models.Pagination{Page: 1, Limit: 0, Total: 3, TotalPages: 0, HasMore: false, HasPrevious: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			page, meta := Paginate(makeProducts(tt.total), tt.page, tt.limit)
			if got := ids(page); !equalStrings(got, tt.wantIDs) {
				t.Errorf("page = %v, want %v", got, tt.wantIDs)
			}
			if meta != tt.wantMeta {
				t.Errorf("pagination = %+v, want %+v", meta, tt.wantMeta)
			}
		})
	}
}

func TestPaginateFixture(t *testing.T) {
	t.Parallel()

	page, meta := Paginate(testProducts(), 1, 2)
	if len(page) != 2 {
		t.Fatalf("len(page) = %d, want 2", len(page))
	}
	if meta.Total != 3 || meta.TotalPages != 2 || !meta.HasMore || meta.HasPrevious {
		t.Errorf("pagination = %+v", meta)
	}
}
