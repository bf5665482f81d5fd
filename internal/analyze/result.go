package analyze

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/analysis_result.schema.json
var resultSchemaJSON string

var resultSchema = jsonschema.MustCompileString(
	"analysis_result.schema.json", resultSchemaJSON)

// Chapter is one resolved page range within the document, optionally
// decorated with its output routing. Field names follow the persisted
// analysis contract.
type Chapter struct {
	ChapterName string `json:"chapter_name"`
	Tag         string `json:"tag"`
	StartPage   int    `json:"chapter_start_page_number"`
	EndPage     int    `json:"chapter_end_page_number"`
	PDFFilename string `json:"pdf_filename,omitempty"`
	PDFFolder   string `json:"pdf_folder,omitempty"`
}

// Routable reports whether the chapter has an output filename and folder.
func (c Chapter) Routable() bool {
	return c.PDFFilename != "" && c.PDFFolder != ""
}

// Result is the full document analysis. It is the sole artifact connecting
// the analysis phase to the split phase and must round-trip through JSON
// without loss.
type Result struct {
	ConfidenceScore int       `json:"confidence_score"`
	BookTitle       string    `json:"book_title"`
	BookStartPage   int       `json:"book_start_page"`
	BookEndPage     int       `json:"book_end_page"`
	Chapters        []Chapter `json:"chapters"`
}

// Save writes the result as indented JSON to path.
func (r *Result) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write analysis result: %w", err)
	}
	return nil
}

// ParseResult decodes and validates a persisted analysis result. Validation
// runs against the embedded JSON Schema so that malformed artifacts are
// rejected before any split I/O happens.
func ParseResult(data []byte) (*Result, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid analysis JSON: %w", err)
	}
	if err := resultSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("analysis JSON failed schema validation: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	var result Result
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis result: %w", err)
	}
	return &result, nil
}

// LoadResult reads a persisted analysis result from path.
func LoadResult(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis result: %w", err)
	}
	return ParseResult(data)
}
