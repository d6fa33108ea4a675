package providers

import (
	"context"

	"omdb-search/internal/domain"
)

// SearchProvider answers one paginated search with a finished page.
// Implementations are fail-soft: they never return an error, a failed or
// empty search is simply a page with no items.
type SearchProvider interface {
	Name() string
	Search(ctx context.Context, term string, page int) domain.SearchResultPage
}
