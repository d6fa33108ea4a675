package domain

import "math"

// Category is the closed set of item kinds the provider reports.
type Category int

const (
	CategoryMovie Category = iota
	CategorySeries
	CategoryEpisode
)

func (c Category) String() string {
	switch c {
	case CategorySeries:
		return "Series"
	case CategoryEpisode:
		return "Episode"
	default:
		return "Movie"
	}
}

// MarshalText keeps exports readable ("Series" instead of 1).
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnknownSortYear marks a year string with no leading integer.
const UnknownSortYear = math.MinInt

// SearchResultItem is the canonical, normalized representation of one search hit.
// Every provider row is mapped into this model and every caller (CLI, exports)
// reads from it. Items are built once per query and never mutated afterwards.
type SearchResultItem struct {
	ID          string   `json:"imdbID"` // provider identifier, join key for the detail lookup
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PosterURL   string   `json:"posterUrl"`
	Category    Category `json:"category"`
	DisplayYear string   `json:"year"` // verbatim provider text, e.g. "2003–2012"
	SortYear    int      `json:"-"`    // ordering only, never displayed

	// DetailFetched is false when the detail lookup failed at the transport,
	// as opposed to the provider answering with an unavailable plot.
	DetailFetched bool `json:"-"`
}

// HasSortYear reports whether SortYear holds a parsed year.
func (it SearchResultItem) HasSortYear() bool {
	return it.SortYear != UnknownSortYear
}
