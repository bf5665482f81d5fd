// Package batch runs the analyze-then-split pipeline over many documents.
// Documents are independent: each gets its own analysis and split, failures
// are isolated per document, and a bounded worker set provides parallelism.
package batch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zryth-solutions/papersplit/internal/analyze"
	"github.com/zryth-solutions/papersplit/internal/home"
	"github.com/zryth-solutions/papersplit/internal/pdf"
	"github.com/zryth-solutions/papersplit/internal/split"
	"github.com/zryth-solutions/papersplit/internal/store"
)

// Report is the outcome of one document's pipeline run.
type Report struct {
	DocID      string       `json:"doc_id"`
	Confidence int          `json:"confidence,omitempty"`
	Chapters   int          `json:"chapters,omitempty"`
	Files      []split.Unit `json:"files,omitempty"`
	Error      string       `json:"error,omitempty"`
}

// Failed reports whether the document's pipeline run failed outright.
func (r Report) Failed() bool {
	return r.Error != ""
}

// Processor runs the pipeline for each document in a batch.
type Processor struct {
	store          store.Store
	home           *home.Dir
	headerFraction float64
	workers        int
	logger         *slog.Logger
}

// Config configures a Processor.
type Config struct {
	Store          store.Store
	Home           *home.Dir
	HeaderFraction float64
	Workers        int // bounds both batch and per-document parallelism
	Logger         *slog.Logger
}

// NewProcessor creates a batch processor.
func NewProcessor(cfg Config) (*Processor, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("store required")
	}
	if cfg.Home == nil {
		return nil, fmt.Errorf("home directory required")
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		store:          cfg.Store,
		home:           cfg.Home,
		headerFraction: cfg.HeaderFraction,
		workers:        workers,
		logger:         logger,
	}, nil
}

// Run processes every document identifier, fanning out across the worker
// bound. Per-document failures land in that document's report; Run itself
// fails only on cancellation.
func (p *Processor) Run(ctx context.Context, docIDs []string) ([]Report, error) {
	reports := make([]Report, len(docIDs))

	sem := make(chan struct{}, p.workers)
	done := make(chan int, len(docIDs))

	for i, docID := range docIDs {
		sem <- struct{}{} // acquire
		go func(idx int, id string) {
			defer func() { <-sem }() // release

			reports[idx] = p.processDocument(ctx, id)
			done <- idx
		}(i, docID)
	}

	for range docIDs {
		<-done
	}

	if err := ctx.Err(); err != nil {
		return reports, fmt.Errorf("batch cancelled: %w", err)
	}
	return reports, nil
}

// processDocument runs analyze-then-split for one document. Any error is a
// failure for this document only.
func (p *Processor) processDocument(ctx context.Context, docID string) Report {
	log := p.logger.With("doc", docID)
	report := Report{DocID: docID}

	pdfPath, err := p.store.FetchDocument(ctx, docID)
	if err != nil {
		report.Error = err.Error()
		log.Error("failed to fetch document", "error", err)
		return report
	}

	doc, err := pdf.Open(pdfPath, p.headerFraction)
	if err != nil {
		report.Error = err.Error()
		log.Error("failed to open document", "error", err)
		return report
	}
	defer doc.Close()

	analyzer := analyze.NewAnalyzer(analyze.Options{
		Workers: p.workers,
		Logger:  log,
	})
	result, err := analyzer.Analyze(ctx, doc)
	if err != nil {
		report.Error = err.Error()
		log.Error("analysis failed", "error", err)
		return report
	}

	if _, err := p.store.SaveAnalysis(ctx, docID, result); err != nil {
		report.Error = err.Error()
		log.Error("failed to persist analysis", "error", err)
		return report
	}

	outDir := p.home.DocumentSplitDir(docID)
	units, err := split.NewSplitter(log).Split(ctx, doc, result, outDir)
	if err != nil {
		report.Error = err.Error()
		log.Error("split failed", "error", err)
		return report
	}

	if err := p.store.SaveSplitOutputs(ctx, docID, units); err != nil {
		report.Error = err.Error()
		log.Error("failed to persist split outputs", "error", err)
		return report
	}

	report.Confidence = result.ConfidenceScore
	report.Chapters = len(result.Chapters)
	report.Files = units
	return report
}
