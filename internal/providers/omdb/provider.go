package omdb

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"omdb-search/internal/concurrency"
	"omdb-search/internal/domain"
	"omdb-search/internal/mappers"
)

// Provider adapts the OMDb client into providers.SearchProvider. It is the
// result aggregator: one search request, then one detail lookup per row,
// all in flight together, joined before the page is returned.
type Provider struct {
	C      *Client
	Policy mappers.Policy

	FullPlot   bool
	MaxWorkers int // <=0 means every detail lookup at once
}

func (p Provider) Name() string { return "omdb" }

// Search never fails. Transport problems degrade single fields to their
// placeholders, and a response the provider marks invalid is an empty page.
// Items come back in the provider's row order.
func (p Provider) Search(ctx context.Context, term string, page int) domain.SearchResultPage {
	reqID := uuid.NewString()

	res := p.C.Search(ctx, term, page)
	if !res.OK() {
		log.Printf("[omdb] req=%s search failed term=%q page=%d err=%v", reqID, term, page, res.Err)
		return domain.EmptyPage()
	}
	if !res.Value.Valid() {
		log.Printf("[omdb] req=%s no results term=%q page=%d reason=%q", reqID, term, page, res.Value.Error)
		return domain.EmptyPage()
	}

	rows := p.usableRows(reqID, res.Value.Search)

	items, _ := concurrency.ProcessParallel(ctx, rows, concurrency.ParallelOptions{MaxWorkers: p.MaxWorkers},
		func(ctx context.Context, _ int, row SearchRow) (domain.SearchResultItem, error) {
			return p.buildItem(ctx, reqID, row), nil
		},
	)

	log.Printf("[omdb] req=%s term=%q page=%d rows=%d total=%d", reqID, term, page, len(items), res.Value.TotalResults)

	return domain.SearchResultPage{
		Items:        items,
		TotalResults: int(res.Value.TotalResults),
	}
}

// usableRows drops rows without an identifier: they can be neither
// looked up nor linked.
func (p Provider) usableRows(reqID string, rows []SearchRow) []SearchRow {
	out := make([]SearchRow, 0, len(rows))
	for _, r := range rows {
		id := strings.TrimSpace(r.ImdbID)
		if id == "" || id == p.Policy.Catalog.Sentinel {
			log.Printf("[omdb] req=%s skip row without id title=%q", reqID, r.Title)
			continue
		}
		out = append(out, r)
	}
	return out
}

func (p Provider) buildItem(ctx context.Context, reqID string, row SearchRow) domain.SearchResultItem {
	d := p.C.Details(ctx, row.ImdbID, p.FullPlot)
	if !d.OK() {
		log.Printf("[omdb] req=%s detail lookup failed id=%s err=%v", reqID, row.ImdbID, d.Err)
	}

	return p.Policy.ToItem(mappers.RawItem{
		ID:            row.ImdbID,
		Title:         row.Title,
		Type:          row.Type,
		Year:          row.Year,
		Poster:        row.Poster,
		Plot:          d.Value.Plot,
		DetailFetched: d.OK(),
	})
}
