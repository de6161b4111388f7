package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"sales-insights-go/internal/config"
	"sales-insights-go/internal/ingest"
	"sales-insights-go/internal/logger"
	"sales-insights-go/internal/pipeline"
	"sales-insights-go/internal/rules"
	"sales-insights-go/internal/sample"
	"sales-insights-go/internal/types"
)

type analyzeResponse struct {
	types.AnalysisResult
	Source     string `json:"source"`
	DurationMs int64  `json:"duration_ms"`
}

func main() {
	log := logger.New()
	log.WithField("service", "sales-insights-go").Info("starting service")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	engine := rules.NewEngine(cfg.Rules)

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	})

	// analyze endpoint: upload a CSV or XLSX of opportunities
	mux.HandleFunc("/analyze", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "analyze")
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		reqLog.Info("analyze request received")

		body, name, err := uploadedFile(r)
		if err != nil {
			reqLog.WithError(err).Warn("bad upload")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer body.Close()

		start := time.Now()
		var opps []types.Opportunity
		if isXLSX(r, name) {
			opps, err = ingest.LoadXLSX(body)
		} else {
			opps, err = ingest.LoadCSV(body)
		}
		if err != nil {
			status := http.StatusInternalServerError
			var schemaErr *ingest.SchemaError
			var parseErr *ingest.ParseError
			if errors.As(err, &schemaErr) || errors.As(err, &parseErr) {
				status = http.StatusBadRequest
			}
			reqLog.WithError(err).Warn("ingestion failed")
			http.Error(w, err.Error(), status)
			return
		}

		res := pipeline.Analyze(engine, opps)
		reqLog.WithField("opportunities", len(opps)).
			WithField("duration_ms", time.Since(start).Milliseconds()).
			Info("analysis complete")

		writeJSON(w, reqLog, analyzeResponse{
			AnalysisResult: res,
			Source:         name,
			DurationMs:     time.Since(start).Milliseconds(),
		})
	})

	// demo endpoint: run the built-in batch through the full pipeline
	mux.HandleFunc("/demo", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "demo")
		reqLog.Info("demo invoked")

		start := time.Now()
		opps, err := ingest.LoadCSV(bytes.NewReader(sample.DemoCSV()))
		if err != nil {
			reqLog.WithError(err).Error("demo data failed to load")
			http.Error(w, "demo data error", http.StatusInternalServerError)
			return
		}
		res := pipeline.Analyze(engine, opps)
		writeJSON(w, reqLog, analyzeResponse{
			AnalysisResult: res,
			Source:         "built-in demo sample",
			DurationMs:     time.Since(start).Milliseconds(),
		})
	})

	// sample.csv endpoint: download a generated opportunities file
	mux.HandleFunc("/sample.csv", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "sample")

		rows := cfg.Sample.Rows
		if q := r.URL.Query().Get("rows"); q != "" {
			if n, err := strconv.Atoi(q); err == nil && n > 0 {
				rows = n
			}
		}
		reqLog.WithField("rows", rows).Info("generating sample")

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="sample_opportunities.csv"`)
		if err := sample.WriteCSV(w, rows, cfg.Sample.Seed); err != nil {
			reqLog.WithError(err).Error("failed to write sample")
		}
	})

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

// uploadedFile accepts either a multipart form with a "file" field or the
// raw request body, and returns the content plus a best-effort source name.
func uploadedFile(r *http.Request) (io.ReadCloser, string, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			return nil, "", fmt.Errorf("missing form file %q: %w", "file", err)
		}
		return f, hdr.Filename, nil
	}
	return r.Body, "request body", nil
}

func isXLSX(r *http.Request, name string) bool {
	if f := r.URL.Query().Get("format"); f != "" {
		return strings.EqualFold(f, "xlsx")
	}
	return strings.EqualFold(filepath.Ext(name), ".xlsx")
}

func writeJSON(w http.ResponseWriter, reqLog *logrus.Entry, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		reqLog.WithField("error", err.Error()).Error("failed to write response")
	}
}
