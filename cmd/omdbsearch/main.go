package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"omdb-search/internal/config"
	"omdb-search/internal/domain"
	"omdb-search/internal/export"
	"omdb-search/internal/logging"
	"omdb-search/internal/mappers"
	"omdb-search/internal/providers"
	"omdb-search/internal/providers/omdb"
	"omdb-search/internal/sftpclient"
)

const minTermChars = 3

type options struct {
	term       string
	page       int
	sortMode   string
	format     string
	outPath    string
	uploadSFTP bool
	fullPlot   bool
	workers    int
}

func main() {
	var opts options
	flag.StringVar(&opts.term, "q", "", "search term (at least 3 chars); also accepted as the first argument")
	flag.IntVar(&opts.page, "page", 1, "1-based result page")
	flag.StringVar(&opts.sortMode, "sort", "", "order the page: year | year-desc (default: provider order)")
	flag.StringVar(&opts.format, "format", "", "export format: csv | xml | json (default: from -out extension)")
	flag.StringVar(&opts.outPath, "out", "", "write the page to this file")
	flag.BoolVar(&opts.uploadSFTP, "sftp", false, "upload the -out file via SFTP")
	flag.BoolVar(&opts.fullPlot, "full-plot", false, "request the full plot instead of the short one")
	flag.IntVar(&opts.workers, "workers", -1, "max concurrent detail lookups (0 = all at once, -1 = SEARCH_MAX_WORKERS)")
	flag.Parse()

	if opts.term == "" {
		opts.term = strings.Join(flag.Args(), " ")
	}

	cfg := config.Load()
	closer := logging.Setup(cfg)
	defer closer.Close()

	if err := run(context.Background(), cfg, opts, os.Stdout); err != nil {
		log.Fatalf("omdbsearch: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config, opts options, w io.Writer) error {
	term := strings.TrimSpace(opts.term)
	if !termLongEnough(term) {
		fmt.Fprintf(w, "Please enter at least %d Chars to display results!\n", minTermChars)
		return nil
	}
	if opts.page < 1 {
		return fmt.Errorf("-page must be >= 1, got %d", opts.page)
	}
	if err := validateSort(opts.sortMode); err != nil {
		return err
	}
	if opts.uploadSFTP && opts.outPath == "" {
		return fmt.Errorf("-sftp needs -out")
	}

	var format export.Format
	if opts.outPath != "" {
		f, err := export.ParseFormat(opts.format, opts.outPath)
		if err != nil {
			return err
		}
		format = f
	}

	if cfg.OMDbAPIKey == "" {
		return fmt.Errorf("missing env OMDB_API_KEY")
	}

	catalog := cfg.Catalog()
	prov := newProvider(cfg, opts, catalog)

	start := time.Now()
	page := prov.Search(ctx, term, opts.page)
	log.Printf("[search] %s term=%q page=%d items=%d total=%d in %s",
		prov.Name(), term, opts.page, len(page.Items), page.TotalResults, time.Since(start))

	page.Items = sortItems(page.Items, opts.sortMode)

	printPage(w, page, opts.page, mappers.NewPolicy(catalog))

	if opts.outPath == "" {
		return nil
	}

	if err := export.WriteFile(opts.outPath, format, page, catalog.IMDbBaseURL); err != nil {
		return err
	}
	log.Printf("wrote %d items to %s (%s)", len(page.Items), opts.outPath, format)

	if opts.uploadSFTP {
		return uploadExport(ctx, cfg, opts.outPath)
	}
	return nil
}

func newProvider(cfg config.Config, opts options, catalog config.Catalog) providers.SearchProvider {
	workers := opts.workers
	if workers < 0 {
		workers = cfg.SearchMaxWorkers
	}
	return omdb.Provider{
		C:          omdb.New(cfg.OMDbBaseURL, cfg.OMDbAPIKey, cfg.OMDbHTTPTimeout),
		Policy:     mappers.NewPolicy(catalog),
		FullPlot:   opts.fullPlot || cfg.FullPlot(),
		MaxWorkers: workers,
	}
}

func termLongEnough(term string) bool {
	return utf8.RuneCountInString(term) >= minTermChars
}

func validateSort(mode string) error {
	switch mode {
	case "", "year", "year-desc":
		return nil
	default:
		return fmt.Errorf("-sort must be year or year-desc, got %q", mode)
	}
}

func sortItems(items []domain.SearchResultItem, mode string) []domain.SearchResultItem {
	switch mode {
	case "year":
		return domain.SortByYear(items, false)
	case "year-desc":
		return domain.SortByYear(items, true)
	default:
		return items
	}
}

func printPage(w io.Writer, page domain.SearchResultPage, pageNo int, policy mappers.Policy) {
	fmt.Fprintf(w, "Found %d Items\n", page.TotalResults)
	if len(page.Items) == 0 {
		fmt.Fprintln(w, "Nothing found!")
		return
	}

	for i, it := range page.Items {
		fmt.Fprintf(w, "%d) %s [%s] %s\n", i+1, it.Title, it.Category, it.DisplayYear)
		fmt.Fprintf(w, "   %s\n", it.Description)
		fmt.Fprintf(w, "   poster: %s\n", it.PosterURL)
		fmt.Fprintf(w, "   more infos on imdb: %s\n", policy.IMDbURL(it.ID))
	}

	if page.TotalResults > domain.PageSize {
		fmt.Fprintf(w, "Page %d of %d\n", pageNo, page.PageCount())
	}
}

func uploadExport(ctx context.Context, cfg config.Config, outPath string) error {
	remoteName := filepath.Base(outPath)

	upCfg := sftpclient.Config{
		Host:                  cfg.SFTPHost,
		Port:                  cfg.SFTPPort,
		User:                  cfg.SFTPUser,
		Pass:                  cfg.SFTPPass,
		RemoteDir:             cfg.SFTPDir,
		InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		KnownHostsPath:        cfg.SFTPKnownHosts,
	}

	upCtx, upCancel := context.WithTimeout(ctx, 5*time.Minute)
	defer upCancel()

	if err := sftpclient.UploadFile(upCtx, upCfg, outPath, remoteName); err != nil {
		return err
	}
	log.Printf("uploaded to sftp://%s:%d%s/%s", upCfg.Host, upCfg.Port, upCfg.RemoteDir, remoteName)
	return nil
}
