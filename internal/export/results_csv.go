package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"omdb-search/internal/domain"
)

// Keep header order EXACT: downstream sheets read by position.
var resultsHeader = []string{
	"IMDB_ID",
	"TITLE",
	"CATEGORY",
	"YEAR",
	"SORT_YEAR",
	"DESCRIPTION",
	"POSTER_URL",
	"IMDB_URL",
}

// WriteResultsCSV writes one row per item, in page order.
func WriteResultsCSV(w io.Writer, page domain.SearchResultPage, imdbBaseURL string) error {
	cw := csv.NewWriter(w)
	// match typical spreadsheet imports
	cw.UseCRLF = true

	if err := cw.Write(resultsHeader); err != nil {
		return err
	}

	for _, it := range page.Items {
		if err := cw.Write(toResultsRow(it, imdbBaseURL)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toResultsRow(it domain.SearchResultItem, imdbBaseURL string) []string {
	sortYear := ""
	if it.HasSortYear() {
		sortYear = strconv.Itoa(it.SortYear)
	}

	return []string{
		it.ID,                        // IMDB_ID
		oneLine(it.Title),            // TITLE
		it.Category.String(),         // CATEGORY
		it.DisplayYear,               // YEAR
		sortYear,                     // SORT_YEAR
		oneLine(it.Description),      // DESCRIPTION
		it.PosterURL,                 // POSTER_URL
		imdbLink(imdbBaseURL, it.ID), // IMDB_URL
	}
}

func imdbLink(base, id string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" || id == "" {
		return ""
	}
	return base + "/" + id
}

// oneLine keeps plots on a single CSV line.
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
