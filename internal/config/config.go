package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// OMDb
	OMDbBaseURL     string
	OMDbAPIKey      string
	OMDbPlot        string // "short" | "full"
	OMDbHTTPTimeout time.Duration

	// IMDb (external detail page links)
	IMDbBaseURL string

	// Search
	SearchMaxWorkers int // <=0 means one goroutine per row

	// Logging
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	// SFTP
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool
	SFTPKnownHosts            string
}

func Load() Config {
	return Config{
		// OMDb
		OMDbBaseURL:     getenv("OMDB_BASE_URL", "http://www.omdbapi.com/"),
		OMDbAPIKey:      os.Getenv("OMDB_API_KEY"),
		OMDbPlot:        normalizePlot(os.Getenv("OMDB_PLOT")),
		OMDbHTTPTimeout: getenvDuration("OMDB_HTTP_TIMEOUT", 30*time.Second),

		// IMDb
		IMDbBaseURL: getenv("IMDB_BASE_URL", "https://imdb.com/title"),

		// Search
		SearchMaxWorkers: getenvInt("SEARCH_MAX_WORKERS", 0),

		// Logging
		LogFile:       os.Getenv("LOG_FILE"),
		LogMaxSizeMB:  getenvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getenvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getenvInt("LOG_MAX_AGE_DAYS", 28),

		// SFTP
		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/inbound"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", true),
		SFTPKnownHosts:            os.Getenv("SFTP_KNOWN_HOSTS"),
	}
}

// FullPlot reports whether detail lookups should ask for the long plot.
func (c Config) FullPlot() bool {
	return c.OMDbPlot == "full"
}

func normalizePlot(v string) string {
	if strings.EqualFold(strings.TrimSpace(v), "full") {
		return "full"
	}
	return "short"
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getenvDuration(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
