package domain

import (
	"sort"
	"strings"
)

// PageSize is the provider's fixed page size.
const PageSize = 10

// SearchResultPage is what one search(term, page) call yields.
// TotalResults is the provider's reported total, not len(Items).
type SearchResultPage struct {
	Items        []SearchResultItem `json:"items"`
	TotalResults int                `json:"totalResults"`
}

// EmptyPage is the "no results" page: zero items, zero total.
func EmptyPage() SearchResultPage {
	return SearchResultPage{Items: []SearchResultItem{}, TotalResults: 0}
}

// PageCount returns how many provider pages TotalResults spans.
func (p SearchResultPage) PageCount() int {
	if p.TotalResults <= 0 {
		return 0
	}
	return (p.TotalResults + PageSize - 1) / PageSize
}

// IDs lists item identifiers in page order.
func (p SearchResultPage) IDs() []string {
	out := make([]string, 0, len(p.Items))
	for _, it := range p.Items {
		out = append(out, it.ID)
	}
	return out
}

// SortByYear returns a copy of items ordered by SortYear.
// Items without a sort year go last in both directions; ties keep ID order.
func SortByYear(items []SearchResultItem, desc bool) []SearchResultItem {
	out := append([]SearchResultItem(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.HasSortYear() != b.HasSortYear() {
			return a.HasSortYear()
		}
		if a.SortYear != b.SortYear {
			if desc {
				return a.SortYear > b.SortYear
			}
			return a.SortYear < b.SortYear
		}
		return strings.Compare(a.ID, b.ID) < 0
	})
	return out
}
