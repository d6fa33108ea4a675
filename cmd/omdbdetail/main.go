package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"omdb-search/internal/config"
	"omdb-search/internal/devutil"
	"omdb-search/internal/logging"
	"omdb-search/internal/mappers"
	"omdb-search/internal/providers/omdb"
)

var detailKeys = []string{
	"Title", "Year", "Type", "Rated", "Released", "Runtime",
	"Genre", "Director", "Actors", "Plot", "imdbRating",
}

func main() {
	id := flag.String("id", "", "IMDb identifier, e.g. tt0133093")
	full := flag.Bool("full", false, "request the full plot")
	flag.Parse()

	cfg := config.Load()
	closer := logging.Setup(cfg)
	defer closer.Close()

	if err := run(context.Background(), cfg, strings.TrimSpace(*id), *full, os.Stdout); err != nil {
		log.Fatalf("omdbdetail: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config, id string, full bool, w io.Writer) error {
	if id == "" {
		return fmt.Errorf("-id is required")
	}
	if cfg.OMDbAPIKey == "" {
		return fmt.Errorf("missing env OMDB_API_KEY")
	}

	client := omdb.New(cfg.OMDbBaseURL, cfg.OMDbAPIKey, cfg.OMDbHTTPTimeout)
	res := client.Details(ctx, id, full || cfg.FullPlot())
	if !res.OK() {
		log.Printf("[omdb] detail lookup failed id=%s err=%v", id, res.Err)
		fmt.Fprintf(w, "No details available for %s\n", id)
		return nil
	}
	if res.Value.Response == "False" {
		fmt.Fprintf(w, "No details available for %s: %s\n", id, res.Value.Error)
		return nil
	}

	catalog := cfg.Catalog()
	fields := devutil.PickAvailable(res.Value, catalog.Sentinel, detailKeys...)
	for _, k := range devutil.SortedKeys(fields) {
		fmt.Fprintf(w, "%-10s %v\n", k+":", fields[k])
	}
	fmt.Fprintf(w, "%-10s %s\n", "IMDb:", mappers.NewPolicy(catalog).IMDbURL(id))
	return nil
}
