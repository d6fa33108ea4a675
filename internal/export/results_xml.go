package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"omdb-search/internal/domain"
)

/*
<SearchResults total="394" page_count="40">
  <Item imdb_id="tt0076759">
    <title>Star Wars: Episode IV - A New Hope</title>
    <category>Movie</category>
    <year>1977</year>
    <sort_year>1977</sort_year>
    <description>...</description>
    <poster_url>...</poster_url>
    <imdb_url>https://imdb.com/title/tt0076759</imdb_url>
  </Item>
</SearchResults>
*/

type xmlResults struct {
	XMLName   xml.Name  `xml:"SearchResults"`
	Total     int       `xml:"total,attr"`
	PageCount int       `xml:"page_count,attr"`
	Items     []xmlItem `xml:"Item"`
}

type xmlItem struct {
	ID          string `xml:"imdb_id,attr"`
	Title       string `xml:"title"`
	Category    string `xml:"category"`
	Year        string `xml:"year,omitempty"`
	SortYear    string `xml:"sort_year,omitempty"`
	Description string `xml:"description"`
	PosterURL   string `xml:"poster_url"`
	IMDbURL     string `xml:"imdb_url,omitempty"`
}

// WriteResultsXML writes the page as a single SearchResults document.
func WriteResultsXML(w io.Writer, page domain.SearchResultPage, imdbBaseURL string) error {
	out := xmlResults{
		Total:     page.TotalResults,
		PageCount: page.PageCount(),
		Items:     make([]xmlItem, 0, len(page.Items)),
	}

	for _, it := range page.Items {
		row := xmlItem{
			ID:          it.ID,
			Title:       it.Title,
			Category:    it.Category.String(),
			Year:        it.DisplayYear,
			Description: it.Description,
			PosterURL:   it.PosterURL,
			IMDbURL:     imdbLink(imdbBaseURL, it.ID),
		}
		if it.HasSortYear() {
			row.SortYear = strconv.Itoa(it.SortYear)
		}
		out.Items = append(out.Items, row)
	}

	b, err := xml.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal xml: %w", err)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("export: write xml: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("export: write xml: %w", err)
	}
	return nil
}
