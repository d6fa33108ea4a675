package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"omdb-search/internal/config"
)

// Setup points the standard logger at stderr and, when cfg.LogFile is set,
// also at a size-rotated file. The returned closer flushes the file.
func Setup(cfg config.Config) io.Closer {
	return setup(cfg, os.Stderr)
}

func setup(cfg config.Config, console io.Writer) io.Closer {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if cfg.LogFile == "" {
		log.SetOutput(console)
		return nopCloser{}
	}

	lj := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    positive(cfg.LogMaxSizeMB, 10),
		MaxBackups: max(cfg.LogMaxBackups, 0),
		MaxAge:     max(cfg.LogMaxAgeDays, 0),
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(console, lj))
	return lj
}

func positive(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
