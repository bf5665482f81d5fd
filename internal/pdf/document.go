// Package pdf provides read access to a source PDF: page counts, header-band
// text extraction, title lookup, and page-level copy primitives.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// DefaultHeaderFraction is the fraction of page height (from the top)
// scanned for structural headers.
const DefaultHeaderFraction = 0.20

// letterHeight is the fallback page height when a page has no usable MediaBox.
const letterHeight = 792.0

// Document is an open source PDF. It is read-only and safe for concurrent
// page reads.
type Document struct {
	path           string
	pageCount      int
	headerFraction float64

	file   *os.File
	reader *pdflib.Reader
}

// Open opens a PDF for analysis and splitting. headerFraction <= 0 selects
// the default.
func Open(path string, headerFraction float64) (*Document, error) {
	if headerFraction <= 0 {
		headerFraction = DefaultHeaderFraction
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	pageCount, err := api.PageCount(f, nil)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to get page count for %s: %w", path, err)
	}
	if pageCount == 0 {
		return nil, fmt.Errorf("PDF has no pages: %s", path)
	}

	file, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PDF %s: %w", path, err)
	}

	return &Document{
		path:           path,
		pageCount:      pageCount,
		headerFraction: headerFraction,
		file:           file,
		reader:         reader,
	}, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.file.Close()
}

// Path returns the source PDF path.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.pageCount
}

// Title returns the document title from the PDF Info dictionary, falling back
// to the first text line of page 1, then to "Unknown Title".
func (d *Document) Title() string {
	if t := strings.TrimSpace(d.reader.Trailer().Key("Info").Key("Title").Text()); t != "" {
		return t
	}

	page := d.reader.Page(1)
	if !page.V.IsNull() {
		if text, err := page.GetPlainText(nil); err == nil {
			for _, line := range strings.Split(text, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					return line
				}
			}
		}
	}

	return "Unknown Title"
}

// HeaderText returns the text found in the top header band of the given page
// (1-indexed). Rows are ordered top to bottom and separated by newlines so
// that line-anchored patterns apply per row. Returns "" for pages with no
// text in the band.
func (d *Document) HeaderText(pageNum int) (string, error) {
	if pageNum < 1 || pageNum > d.pageCount {
		return "", fmt.Errorf("page %d out of range [1, %d]", pageNum, d.pageCount)
	}

	page := d.reader.Page(pageNum)
	if page.V.IsNull() {
		return "", nil
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		return "", fmt.Errorf("failed to read text on page %d: %w", pageNum, err)
	}

	height := pageHeight(page)
	// PDF coordinates have their origin bottom-left, so the top band is the
	// highest range of Y values.
	cutoff := height * (1 - d.headerFraction)

	type headerRow struct {
		pos  int64
		text string
	}
	var band []headerRow
	for _, row := range rows {
		if float64(row.Position) < cutoff {
			continue
		}
		var words []string
		for _, t := range row.Content {
			if s := strings.TrimSpace(t.S); s != "" {
				words = append(words, s)
			}
		}
		if len(words) == 0 {
			continue
		}
		band = append(band, headerRow{pos: row.Position, text: strings.Join(words, " ")})
	}

	sort.SliceStable(band, func(i, j int) bool { return band[i].pos > band[j].pos })

	lines := make([]string, len(band))
	for i, r := range band {
		lines[i] = r.text
	}
	return strings.Join(lines, "\n"), nil
}

// ExtractPage copies a single page (1-indexed) into scratchDir as its own
// PDF and returns the written path.
func (d *Document) ExtractPage(pageNum int, scratchDir string) (string, error) {
	if pageNum < 1 || pageNum > d.pageCount {
		return "", fmt.Errorf("page %d out of range [1, %d]", pageNum, d.pageCount)
	}

	outPath := filepath.Join(scratchDir, fmt.Sprintf("page_%04d.pdf", pageNum))
	if err := api.TrimFile(d.path, outPath, []string{strconv.Itoa(pageNum)}, nil); err != nil {
		return "", fmt.Errorf("failed to copy page %d: %w", pageNum, err)
	}
	return outPath, nil
}

// Assemble merges the given single-page PDFs, in order, into outPath.
func (d *Document) Assemble(pageFiles []string, outPath string) error {
	if len(pageFiles) == 0 {
		return fmt.Errorf("no pages to assemble")
	}
	if err := api.MergeCreateFile(pageFiles, outPath, false, nil); err != nil {
		return fmt.Errorf("failed to assemble %s: %w", outPath, err)
	}
	return nil
}

func pageHeight(page pdflib.Page) float64 {
	box := page.V.Key("MediaBox")
	if box.IsNull() {
		box = page.V.Key("Parent").Key("MediaBox")
	}
	if box.IsNull() || box.Len() < 4 {
		return letterHeight
	}
	height := box.Index(3).Float64() - box.Index(1).Float64()
	if height <= 0 {
		return letterHeight
	}
	return height
}
