// Package store is the document-storage boundary: fetch a source PDF by
// identifier, persist analysis artifacts and split outputs by identifier.
// The local filesystem implementation here is the only one in-tree; remote
// backends plug in behind the same interface.
package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/zryth-solutions/papersplit/internal/analyze"
	"github.com/zryth-solutions/papersplit/internal/split"
)

// Store abstracts document storage for the analysis and split phases.
type Store interface {
	// FetchDocument resolves a document identifier to a local PDF path.
	FetchDocument(ctx context.Context, docID string) (string, error)

	// SaveAnalysis persists the analysis result for a document and returns
	// the artifact path.
	SaveAnalysis(ctx context.Context, docID string, result *analyze.Result) (string, error)

	// LoadAnalysis reloads and validates a persisted analysis result.
	LoadAnalysis(ctx context.Context, docID string) (*analyze.Result, error)

	// SaveSplitOutputs records the split outputs for a document. Paths in
	// units must exist locally.
	SaveSplitOutputs(ctx context.Context, docID string, units []split.Unit) error

	// ListDocuments returns the identifiers of all stored source PDFs.
	ListDocuments(ctx context.Context) ([]string, error)
}

// retryOpts are shared across storage I/O. Transient filesystem errors
// (network mounts, slow object-store gateways fronting this path) get a few
// short attempts before the operation fails.
func retryOpts(ctx context.Context) []retry.Option {
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(200 * time.Millisecond),
		retry.LastErrorOnly(true),
	}
}

// Local is a filesystem-backed Store rooted at a directory of source PDFs.
// Source documents live at {root}/{docID}.pdf, analysis artifacts at
// {root}/analysis/{docID}.json, split outputs under {root}/split/{docID}/.
type Local struct {
	root string
}

// NewLocal creates a local store rooted at dir.
func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		return nil, fmt.Errorf("store root directory required")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve store root: %w", err)
	}
	return &Local{root: abs}, nil
}

// Root returns the store root directory.
func (l *Local) Root() string {
	return l.root
}

// FetchDocument resolves docID to {root}/{docID}.pdf, verifying it exists.
func (l *Local) FetchDocument(ctx context.Context, docID string) (string, error) {
	path := filepath.Join(l.root, docID+".pdf")
	err := retry.Do(func() error {
		_, statErr := os.Stat(path)
		return statErr
	}, retryOpts(ctx)...)
	if err != nil {
		return "", fmt.Errorf("source document %s not found: %w", docID, err)
	}
	return path, nil
}

// SaveAnalysis writes the analysis JSON to {root}/analysis/{docID}.json.
func (l *Local) SaveAnalysis(ctx context.Context, docID string, result *analyze.Result) (string, error) {
	dir := filepath.Join(l.root, "analysis")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create analysis directory: %w", err)
	}

	path := filepath.Join(dir, docID+".json")
	err := retry.Do(func() error {
		return result.Save(path)
	}, retryOpts(ctx)...)
	if err != nil {
		return "", fmt.Errorf("failed to persist analysis for %s: %w", docID, err)
	}
	return path, nil
}

// LoadAnalysis reloads {root}/analysis/{docID}.json with schema validation.
func (l *Local) LoadAnalysis(ctx context.Context, docID string) (*analyze.Result, error) {
	path := filepath.Join(l.root, "analysis", docID+".json")

	var result *analyze.Result
	err := retry.Do(func() error {
		var loadErr error
		result, loadErr = analyze.LoadResult(path)
		return loadErr
	}, retryOpts(ctx)...)
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis for %s: %w", docID, err)
	}
	return result, nil
}

// SaveSplitOutputs copies split files into {root}/split/{docID}/{folder}/.
func (l *Local) SaveSplitOutputs(ctx context.Context, docID string, units []split.Unit) error {
	for _, unit := range units {
		destDir := filepath.Join(l.root, "split", docID, unit.Folder)
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return fmt.Errorf("failed to create split directory: %w", err)
		}

		dest := filepath.Join(destDir, unit.Filename)
		if dest == unit.Path {
			continue // already in place
		}
		err := retry.Do(func() error {
			return copyFile(unit.Path, dest)
		}, retryOpts(ctx)...)
		if err != nil {
			return fmt.Errorf("failed to persist %s: %w", unit.Filename, err)
		}
	}
	return nil
}

// ListDocuments returns the docIDs of all PDFs at the store root.
func (l *Local) ListDocuments(ctx context.Context) ([]string, error) {
	var entries []os.DirEntry
	err := retry.Do(func() error {
		var readErr error
		entries, readErr = os.ReadDir(l.root)
		return readErr
	}, retryOpts(ctx)...)
	if err != nil {
		return nil, fmt.Errorf("failed to read store root: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(strings.ToLower(name), ".pdf") {
			ids = append(ids, strings.TrimSuffix(name, filepath.Ext(name)))
		}
	}
	return ids, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
