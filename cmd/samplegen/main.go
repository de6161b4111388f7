package main

import (
	"flag"
	"os"
	"path/filepath"

	"sales-insights-go/internal/config"
	"sales-insights-go/internal/logger"
	"sales-insights-go/internal/sample"
)

// samplegen writes a reproducible mock opportunities CSV for demos and tests.
func main() {
	log := logger.New().WithComponent("samplegen")

	cfg, err := config.Load()
	if err != nil {
		log.WithField("error", err.Error()).Fatal("failed to load config")
	}

	out := flag.String("out", cfg.Sample.Path, "output CSV path")
	rows := flag.Int("rows", cfg.Sample.Rows, "number of rows to generate")
	seed := flag.Int64("seed", cfg.Sample.Seed, "random seed")
	flag.Parse()

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.WithField("error", err.Error()).Fatal("failed to create output dir")
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		log.WithField("error", err.Error()).Fatal("failed to create output file")
	}
	defer f.Close()

	if err := sample.WriteCSV(f, *rows, *seed); err != nil {
		log.WithField("error", err.Error()).Fatal("failed to write sample")
	}

	log.WithField("rows", *rows).WithField("path", *out).Info("sample generated")
}
