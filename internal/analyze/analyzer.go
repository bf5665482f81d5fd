// Package analyze reconstructs the latent structure of a composite exam-paper
// PDF: which pages start a paper or solution set, what each unit should be
// called, and where its output belongs.
package analyze

import (
	"context"
	"log/slog"
)

// Analyzer runs the full analysis pipeline: detection, range resolution,
// output classification, and confidence scoring.
type Analyzer struct {
	detector *Detector
	logger   *slog.Logger
}

// Options configures an Analyzer.
type Options struct {
	Patterns *PatternSet  // nil means the default set
	Workers  int          // header-scan parallelism, min 1
	Logger   *slog.Logger // nil means slog.Default
}

// NewAnalyzer creates an analyzer from options.
func NewAnalyzer(opts Options) *Analyzer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		detector: NewDetector(opts.Patterns, opts.Workers, logger),
		logger:   logger,
	}
}

// Analyze produces the structural analysis of a document. A document with no
// detectable structure yields an empty chapter list and the floor confidence
// score, not an error.
func (a *Analyzer) Analyze(ctx context.Context, doc Document) (*Result, error) {
	totalPages := doc.PageCount()

	detections, err := a.detector.DetectChapters(ctx, doc)
	if err != nil {
		return nil, err
	}

	chapters := ResolveRanges(detections, totalPages)
	for i := range chapters {
		if c, ok := Classify(chapters[i].ChapterName, chapters[i].Tag); ok {
			chapters[i].PDFFilename = c.Filename
			chapters[i].PDFFolder = c.Folder
		}
	}

	result := &Result{
		ConfidenceScore: Score(detections, totalPages),
		BookTitle:       doc.Title(),
		BookStartPage:   1,
		BookEndPage:     totalPages,
		Chapters:        chapters,
	}

	a.logger.Info("analysis complete",
		"title", result.BookTitle,
		"pages", totalPages,
		"chapters", len(chapters),
		"confidence", result.ConfidenceScore)

	return result, nil
}
