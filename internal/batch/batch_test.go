package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/zryth-solutions/papersplit/internal/home"
	"github.com/zryth-solutions/papersplit/internal/store"
)

func TestNewProcessorValidation(t *testing.T) {
	h, err := home.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	st, err := store.NewLocal(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewProcessor(Config{Home: h}); err == nil {
		t.Error("expected error without store")
	}
	if _, err := NewProcessor(Config{Store: st}); err == nil {
		t.Error("expected error without home")
	}
	if _, err := NewProcessor(Config{Store: st, Home: h}); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestRunIsolatesFailures(t *testing.T) {
	// Identifiers with no matching source PDF fail per-document, and the
	// batch still completes with one report per input.
	h, err := home.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	st, err := store.NewLocal(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	proc, err := NewProcessor(Config{Store: st, Home: h, Workers: 2})
	if err != nil {
		t.Fatal(err)
	}

	reports, err := proc.Run(context.Background(), []string{"ghost-1", "ghost-2", "ghost-3"})
	if err != nil {
		t.Fatal(err)
	}

	if len(reports) != 3 {
		t.Fatalf("got %d reports, want 3", len(reports))
	}
	for _, r := range reports {
		if !r.Failed() {
			t.Errorf("report for %s should have failed", r.DocID)
		}
	}
}

func TestRunEndToEnd(t *testing.T) {
	// Full pipeline over a real PDF fixture, if present.
	fixture := filepath.Join("..", "..", "testdata", "composite-book.pdf")
	if _, err := os.Stat(fixture); os.IsNotExist(err) {
		t.Skip("test fixture not found")
	}

	storeRoot := t.TempDir()
	data, err := os.ReadFile(fixture)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(storeRoot, "composite-book.pdf"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	h, err := home.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := h.EnsureExists(); err != nil {
		t.Fatal(err)
	}
	st, err := store.NewLocal(storeRoot)
	if err != nil {
		t.Fatal(err)
	}

	proc, err := NewProcessor(Config{Store: st, Home: h, Workers: 4})
	if err != nil {
		t.Fatal(err)
	}

	reports, err := proc.Run(context.Background(), []string{"composite-book"})
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	if reports[0].Failed() {
		t.Fatalf("pipeline failed: %s", reports[0].Error)
	}
	if reports[0].Confidence < 30 || reports[0].Confidence > 95 {
		t.Errorf("confidence %d outside [30, 95]", reports[0].Confidence)
	}
}
