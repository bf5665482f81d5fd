package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
)

// Document is the read-only view of a source PDF that analysis needs.
// Implementations must be safe for concurrent page reads.
type Document interface {
	PageCount() int
	Title() string
	HeaderText(pageNum int) (string, error)
}

// Detection is one structural header found on a page.
type Detection struct {
	Name string
	Tag  string
	Page int
}

// Detector scans page headers for structural patterns.
type Detector struct {
	patterns *PatternSet
	workers  int
	logger   *slog.Logger
}

// NewDetector creates a detector. workers bounds the parallel header scan;
// values below 1 mean no parallelism.
func NewDetector(patterns *PatternSet, workers int, logger *slog.Logger) *Detector {
	if patterns == nil {
		patterns = DefaultPatternSet()
	}
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{patterns: patterns, workers: workers, logger: logger}
}

// DetectChapters extracts the header text of every page, selects the best
// pattern match per page, and returns the detections deduplicated and sorted
// ascending by page. Pages with no match or failed extraction are skipped.
func (d *Detector) DetectChapters(ctx context.Context, doc Document) ([]Detection, error) {
	pageCount := doc.PageCount()
	headers, err := d.scanHeaders(ctx, doc, pageCount)
	if err != nil {
		return nil, err
	}

	// Selection, dedupe, and ordering are sequential: tie-breaking depends
	// only on per-page matches, but the output contract is page-ascending.
	type detKey struct {
		name string
		page int
	}
	seen := make(map[detKey]bool)
	var detections []Detection
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		best, ok := Best(d.patterns.Match(headers[pageNum-1]))
		if !ok {
			continue
		}
		key := detKey{name: best.Name, page: pageNum}
		if seen[key] {
			continue
		}
		seen[key] = true
		detections = append(detections, Detection{
			Name: best.Name,
			Tag:  TagOf(best.Name),
			Page: pageNum,
		})
		d.logger.Debug("detected chapter", "name", best.Name, "page", pageNum)
	}

	sort.SliceStable(detections, func(i, j int) bool {
		return detections[i].Page < detections[j].Page
	})
	return detections, nil
}

// scanHeaders extracts header text for all pages, fanning out across a
// bounded set of goroutines and merging results back by page index.
func (d *Detector) scanHeaders(ctx context.Context, doc Document, pageCount int) ([]string, error) {
	headers := make([]string, pageCount)

	type result struct {
		pageNum int
		err     error
	}

	results := make(chan result, pageCount)
	sem := make(chan struct{}, d.workers)

	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		sem <- struct{}{} // acquire
		go func(pageNum int) {
			defer func() { <-sem }() // release

			text, err := doc.HeaderText(pageNum)
			if err == nil {
				headers[pageNum-1] = text
			}
			results <- result{pageNum: pageNum, err: err}
		}(pageNum)
	}

	for i := 0; i < pageCount; i++ {
		r := <-results
		if r.err != nil {
			// A single unreadable page is not fatal; it just yields no
			// detection.
			d.logger.Warn("failed to extract header", "page", r.pageNum, "error", r.err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("header scan cancelled: %w", err)
	}
	return headers, nil
}
