package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/midbel/chartviz/report"
)

func main() {
	var (
		config  = flag.String("config", "report.yml", "report configuration file")
		file    = flag.String("file", "", "output file (default stdout)")
		level   = flag.String("log-level", "info", "log level")
		jsonLog = flag.Bool("log-json", false, "log as json")
	)
	flag.Parse()

	logger := makeLogger(*level, *jsonLog)

	cfg, err := report.Load(*config)
	if err != nil {
		logger.Error().Str("config", *config).Err(err).Msg("loading configuration")
		os.Exit(1)
	}
	page, err := cfg.Page(filepath.Dir(*config))
	if err != nil {
		logger.Error().Str("config", *config).Err(err).Msg("resolving report data")
		os.Exit(1)
	}
	logger.Debug().Str("title", page.Title).Int("charts", len(page.Cells)).Msg("report loaded")

	var w io.Writer = os.Stdout
	if *file != "" {
		f, err := os.Create(*file)
		if err != nil {
			logger.Error().Err(err).Msg("creating output file")
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	if err := page.Render(w); err != nil {
		logger.Error().Err(err).Msg("rendering report")
		os.Exit(2)
	}
	logger.Info().Str("file", *file).Int("charts", len(page.Cells)).Msg("report rendered")
}

func makeLogger(level string, asJSON bool) *bolt.Logger {
	var handler bolt.Handler
	if asJSON {
		handler = bolt.NewJSONHandler(os.Stderr)
	} else {
		handler = bolt.NewConsoleHandler(os.Stderr)
	}
	return bolt.New(handler).SetLevel(parseLevel(level))
}

func parseLevel(str string) bolt.Level {
	switch str {
	case "trace":
		return bolt.TRACE
	case "debug":
		return bolt.DEBUG
	case "warn":
		return bolt.WARN
	case "error":
		return bolt.ERROR
	default:
		return bolt.INFO
	}
}
