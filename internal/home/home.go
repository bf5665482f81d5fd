// Package home manages the papersplit working directory layout.
package home

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName is the default name for the papersplit home directory.
	DefaultDirName = ".papersplit"

	// AnalysisDirName is the subdirectory for analysis JSON artifacts.
	AnalysisDirName = "analysis"

	// SplitDirName is the subdirectory for split output PDFs.
	SplitDirName = "split"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"
)

// Folder names for classified split outputs. These are part of the output
// contract: question papers and answer keys land in separate directories.
const (
	QuestionPapersFolder = "question_papers"
	AnswerKeysFolder     = "answer_keys"
)

// Dir represents the papersplit home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.papersplit).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// EnsureExists creates the home directory and subdirectories if they don't exist.
func (d *Dir) EnsureExists() error {
	for _, p := range []string{d.AnalysisDir(), d.SplitDir()} {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", p, err)
		}
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// AnalysisDir returns the directory holding analysis JSON artifacts.
func (d *Dir) AnalysisDir() string {
	return filepath.Join(d.path, AnalysisDirName)
}

// AnalysisPath returns the analysis JSON path for a document identifier.
func (d *Dir) AnalysisPath(docID string) string {
	return filepath.Join(d.AnalysisDir(), docID+".json")
}

// SplitDir returns the root directory for split outputs.
func (d *Dir) SplitDir() string {
	return filepath.Join(d.path, SplitDirName)
}

// DocumentSplitDir returns the split output directory for a document identifier.
func (d *Dir) DocumentSplitDir(docID string) string {
	return filepath.Join(d.SplitDir(), docID)
}

// EnsureDocumentSplitDirs creates the per-document output folders
// (question_papers and answer_keys) for a document identifier.
func (d *Dir) EnsureDocumentSplitDirs(docID string) error {
	for _, folder := range []string{QuestionPapersFolder, AnswerKeysFolder} {
		p := filepath.Join(d.DocumentSplitDir(docID), folder)
		if err := os.MkdirAll(p, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", p, err)
		}
	}
	return nil
}

// DocIDFromPath derives a document identifier from a PDF path:
// the base filename without its extension.
func DocIDFromPath(pdfPath string) string {
	base := filepath.Base(pdfPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
