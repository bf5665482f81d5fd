// Package split reassembles one output PDF per classified chapter of an
// analysis result, tolerating bad chapters and bad pages without aborting.
package split

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/zryth-solutions/papersplit/internal/analyze"
	"github.com/zryth-solutions/papersplit/internal/home"
)

// PageSource provides page-level copy access to the source document.
// Implementations must be safe for sequential reuse across chapters.
type PageSource interface {
	PageCount() int
	// ExtractPage copies a single page (1-indexed) into scratchDir as its
	// own document and returns the written path.
	ExtractPage(pageNum int, scratchDir string) (string, error)
	// Assemble merges single-page documents, in order, into outPath.
	Assemble(pageFiles []string, outPath string) error
}

// Unit records one successfully written output file.
type Unit struct {
	Filename    string `json:"filename"`
	Folder      string `json:"folder"`
	Path        string `json:"path"`
	Pages       string `json:"pages"`
	PageCount   int    `json:"page_count"`
	ChapterName string `json:"chapter_name"`
}

// Splitter writes one output PDF per routable chapter.
type Splitter struct {
	logger *slog.Logger
}

// NewSplitter creates a splitter.
func NewSplitter(logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Splitter{logger: logger}
}

// Split copies the page range of every routable chapter in result into its
// own PDF under outDir/{folder}/{filename}. Invalid or unroutable chapters
// are logged and skipped; a failed page copy omits that page only. The
// returned units cover exactly the files written. Split never fails for a
// single bad chapter; callers judge the batch by len(units).
func (s *Splitter) Split(ctx context.Context, src PageSource, result *analyze.Result, outDir string) ([]Unit, error) {
	for _, folder := range []string{home.QuestionPapersFolder, home.AnswerKeysFolder} {
		if err := os.MkdirAll(filepath.Join(outDir, folder), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	scratchRoot := filepath.Join(outDir, ".scratch-"+uuid.New().String())
	if err := os.MkdirAll(scratchRoot, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(scratchRoot)

	var units []Unit
	for i, chapter := range result.Chapters {
		if err := ctx.Err(); err != nil {
			return units, fmt.Errorf("split cancelled: %w", err)
		}

		unit, ok := s.splitChapter(src, chapter, outDir, scratchRoot, i)
		if ok {
			units = append(units, unit)
			s.logger.Info("split chapter",
				"filename", unit.Filename, "folder", unit.Folder,
				"pages", unit.Pages, "written", unit.PageCount)
		}
	}

	s.logger.Info("split complete", "files", len(units), "chapters", len(result.Chapters))
	return units, nil
}

// splitChapter writes one chapter. Returns ok=false for chapters that are
// skipped for any reason; skipping is logged, never fatal.
func (s *Splitter) splitChapter(src PageSource, chapter analyze.Chapter, outDir, scratchRoot string, idx int) (Unit, bool) {
	totalPages := src.PageCount()
	startPage := chapter.StartPage
	endPage := chapter.EndPage

	if startPage < 1 || endPage < startPage || startPage > totalPages {
		s.logger.Warn("skipping chapter with invalid page range",
			"chapter", chapter.ChapterName, "start", startPage, "end", endPage, "total", totalPages)
		return Unit{}, false
	}

	if !chapter.Routable() {
		s.logger.Warn("skipping unroutable chapter",
			"chapter", chapter.ChapterName, "tag", chapter.Tag)
		return Unit{}, false
	}

	if chapter.PDFFolder != home.QuestionPapersFolder && chapter.PDFFolder != home.AnswerKeysFolder {
		s.logger.Warn("skipping chapter with unknown folder",
			"chapter", chapter.ChapterName, "folder", chapter.PDFFolder)
		return Unit{}, false
	}

	scratchDir := filepath.Join(scratchRoot, fmt.Sprintf("chapter_%03d", idx))
	if err := os.MkdirAll(scratchDir, 0o755); err != nil {
		s.logger.Warn("skipping chapter, scratch dir failed",
			"chapter", chapter.ChapterName, "error", err)
		return Unit{}, false
	}

	lastPage := endPage
	if lastPage > totalPages {
		lastPage = totalPages
	}

	var pageFiles []string
	for pageNum := startPage; pageNum <= lastPage; pageNum++ {
		pageFile, err := src.ExtractPage(pageNum, scratchDir)
		if err != nil {
			s.logger.Warn("failed to copy page, omitting",
				"chapter", chapter.ChapterName, "page", pageNum, "error", err)
			continue
		}
		pageFiles = append(pageFiles, pageFile)
	}

	if len(pageFiles) == 0 {
		s.logger.Warn("no pages copied for chapter", "chapter", chapter.ChapterName)
		return Unit{}, false
	}

	outPath := filepath.Join(outDir, chapter.PDFFolder, chapter.PDFFilename)
	if err := src.Assemble(pageFiles, outPath); err != nil {
		s.logger.Warn("failed to write chapter output",
			"chapter", chapter.ChapterName, "path", outPath, "error", err)
		return Unit{}, false
	}

	return Unit{
		Filename:    chapter.PDFFilename,
		Folder:      chapter.PDFFolder,
		Path:        outPath,
		Pages:       fmt.Sprintf("%d-%d", startPage, endPage),
		PageCount:   len(pageFiles),
		ChapterName: chapter.ChapterName,
	}, true
}
