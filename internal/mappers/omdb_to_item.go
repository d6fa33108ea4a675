package mappers

import (
	"strings"

	"omdb-search/internal/config"
	"omdb-search/internal/domain"
)

// RawItem is one search row joined with the plot from its detail lookup.
// Values are copied verbatim from the provider.
type RawItem struct {
	ID     string
	Title  string
	Type   string
	Year   string
	Poster string
	Plot   string

	// DetailFetched is false when the detail lookup never produced a record.
	DetailFetched bool
}

// Policy applies the catalog's placeholder and default-image rules.
type Policy struct {
	Catalog config.Catalog
}

func NewPolicy(cat config.Catalog) Policy {
	return Policy{Catalog: cat}
}

func (p Policy) isSentinel(v string) bool {
	return v == p.Catalog.Sentinel
}

// Title substitutes the title placeholder for the sentinel.
func (p Policy) Title(raw string) string {
	if p.isSentinel(raw) || strings.TrimSpace(raw) == "" {
		return p.Catalog.TitlePlaceholder
	}
	return raw
}

// Description substitutes the description placeholder for the sentinel.
// An empty plot means the lookup produced nothing and is treated the same way.
func (p Policy) Description(plot string) string {
	if p.isSentinel(plot) || strings.TrimSpace(plot) == "" {
		return p.Catalog.DescriptionPlaceholder
	}
	return plot
}

// DefaultImage picks the fallback poster for a raw category string.
func (p Policy) DefaultImage(rawType string) string {
	if c, ok := lookupCategory(rawType); ok {
		if img := p.Catalog.DefaultImages[c]; img != "" {
			return img
		}
	}
	return p.Catalog.FallbackImage
}

// Poster keeps the provider poster unless it is the sentinel.
func (p Policy) Poster(raw, rawType string) string {
	if p.isSentinel(raw) || strings.TrimSpace(raw) == "" {
		return p.DefaultImage(rawType)
	}
	return raw
}

// ToItem builds the finished item for one row.
func (p Policy) ToItem(r RawItem) domain.SearchResultItem {
	return domain.SearchResultItem{
		ID:            r.ID,
		Title:         p.Title(r.Title),
		Description:   p.Description(r.Plot),
		PosterURL:     p.Poster(r.Poster, r.Type),
		Category:      ClassifyCategory(r.Type),
		DisplayYear:   r.Year,
		SortYear:      SortYear(r.Year),
		DetailFetched: r.DetailFetched,
	}
}

// IMDbURL is the external detail page for an item.
func (p Policy) IMDbURL(id string) string {
	return strings.TrimRight(p.Catalog.IMDbBaseURL, "/") + "/" + id
}
