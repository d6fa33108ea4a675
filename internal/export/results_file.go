package export

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"omdb-search/internal/domain"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
)

// ParseFormat accepts csv|xml|json, case-insensitive. Empty falls back to the
// extension of outPath, then csv.
func ParseFormat(v, outPath string) (Format, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		v = strings.TrimPrefix(strings.ToLower(filepath.Ext(outPath)), ".")
		if v == "" {
			return FormatCSV, nil
		}
	}
	switch Format(v) {
	case FormatCSV, FormatXML, FormatJSON:
		return Format(v), nil
	default:
		return "", fmt.Errorf("export: unknown format %q (want csv, xml or json)", v)
	}
}

// WriteResultsJSON writes the page plus a link per item.
func WriteResultsJSON(w io.Writer, page domain.SearchResultPage, imdbBaseURL string) error {
	type jsonItem struct {
		domain.SearchResultItem
		IMDbURL string `json:"imdbUrl,omitempty"`
	}
	out := struct {
		Items        []jsonItem `json:"items"`
		TotalResults int        `json:"totalResults"`
		PageCount    int        `json:"pageCount"`
	}{
		Items:        make([]jsonItem, 0, len(page.Items)),
		TotalResults: page.TotalResults,
		PageCount:    page.PageCount(),
	}
	for _, it := range page.Items {
		out.Items = append(out.Items, jsonItem{SearchResultItem: it, IMDbURL: imdbLink(imdbBaseURL, it.ID)})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Write renders page in the given format.
func Write(w io.Writer, f Format, page domain.SearchResultPage, imdbBaseURL string) error {
	switch f {
	case FormatCSV:
		return WriteResultsCSV(w, page, imdbBaseURL)
	case FormatXML:
		return WriteResultsXML(w, page, imdbBaseURL)
	case FormatJSON:
		return WriteResultsJSON(w, page, imdbBaseURL)
	default:
		return fmt.Errorf("export: unknown format %q", f)
	}
}

// WriteFile creates outPath (and its directory) on the OS filesystem and
// renders page into it.
func WriteFile(outPath string, f Format, page domain.SearchResultPage, imdbBaseURL string) error {
	return WriteFileFs(afero.NewOsFs(), outPath, f, page, imdbBaseURL)
}

// WriteFileFs is WriteFile on an arbitrary filesystem.
func WriteFileFs(fs afero.Fs, outPath string, f Format, page domain.SearchResultPage, imdbBaseURL string) error {
	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: mkdir %s: %w", dir, err)
		}
	}

	fh, err := fs.Create(outPath)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", outPath, err)
	}

	if err := Write(fh, f, page, imdbBaseURL); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
