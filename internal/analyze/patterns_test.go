package analyze

import "testing"

func TestPatternSetMatch(t *testing.T) {
	ps := DefaultPatternSet()

	tests := []struct {
		name   string
		header string
		want   string // expected best match name, "" for no match
	}{
		{
			name:   "tagged self assessment paper",
			header: "UNSOLVED Self Assessment Paper-4",
			want:   "UNSOLVED Self Assessment Paper-4",
		},
		{
			name:   "untagged self assessment paper",
			header: "Self Assessment Paper-2",
			want:   "Self Assessment Paper-2",
		},
		{
			name:   "sample question paper with tag",
			header: "SOLVED Sample Question Paper-1",
			want:   "SOLVED Sample Question Paper-1",
		},
		{
			name:   "sample question with embedded solved",
			header: "Sample Question SOLVED Paper-3",
			want:   "Sample Question SOLVED Paper-3",
		},
		{
			name:   "practice paper",
			header: "UNSOLVED Practice Paper-2",
			want:   "UNSOLVED Practice Paper-2",
		},
		{
			name:   "mock test",
			header: "Mock Test-3",
			want:   "Mock Test-3",
		},
		{
			name:   "abbreviated SQP",
			header: "SOLVED SQP-5",
			want:   "SOLVED SQP-5",
		},
		{
			name:   "abbreviated SAP with spaced hyphen",
			header: "SAP - 7",
			want:   "SAP - 7",
		},
		{
			name:   "mind map numbered",
			header: "Mind Map-2",
			want:   "Mind Map-2",
		},
		{
			name:   "on tips",
			header: "On tips",
			want:   "On tips",
		},
		{
			name:   "generic chapter",
			header: "Chapter 5: Electricity",
			want:   "Chapter 5: Electricity",
		},
		{
			name:   "case insensitive",
			header: "unsolved self assessment paper-1",
			want:   "unsolved self assessment paper-1",
		},
		{
			name:   "not anchored mid-line",
			header: "see the Practice Paper-2 for details",
			want:   "",
		},
		{
			name:   "second line of multi-line header",
			header: "Mathematics Standard\nSOLVED Sample Question Paper-6",
			want:   "SOLVED Sample Question Paper-6",
		},
		{
			name:   "no structural header",
			header: "General Instructions: attempt all questions",
			want:   "",
		},
		{
			name:   "empty header",
			header: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, ok := Best(ps.Match(tt.header))
			if tt.want == "" {
				if ok {
					t.Fatalf("expected no match, got %q", best.Name)
				}
				return
			}
			if !ok {
				t.Fatalf("expected match %q, got none", tt.want)
			}
			if best.Name != tt.want {
				t.Errorf("got %q, want %q", best.Name, tt.want)
			}
		})
	}
}

func TestLongestMatchWins(t *testing.T) {
	ps := DefaultPatternSet()

	// Both a generic chapter line and a more specific paper header are
	// present; the longer match must be selected.
	header := "UNSOLVED Self Assessment Paper-3\nChapter 3"

	best, ok := Best(ps.Match(header))
	if !ok {
		t.Fatal("expected a match")
	}
	if best.Name != "UNSOLVED Self Assessment Paper-3" {
		t.Errorf("got %q, want the self assessment paper match", best.Name)
	}
}

func TestBestPriorityTieBreak(t *testing.T) {
	ps := DefaultPatternSet()

	// Two equal-length matches on different lines; rule order decides.
	// The SQP rule is registered before the SAP rule.
	matches := ps.Match("SQP - 1\nSAP - 1")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	best, _ := Best(matches)
	if best.Name != "SQP - 1" {
		t.Errorf("got %q, want %q", best.Name, "SQP - 1")
	}
}

func TestBestEmpty(t *testing.T) {
	if _, ok := Best(nil); ok {
		t.Error("Best(nil) should report no match")
	}
}

func TestTagOf(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"UNSOLVED Self Assessment Paper-1", "UNSOLVED"},
		{"SOLUTIONS Sample Question Paper-2", "SOLUTIONS"},
		{"Self Assessment Paper-3", "Self"},
		{"Mind Map-2", "Mind"},
		{"", "NA"},
	}

	for _, tt := range tests {
		if got := TagOf(tt.name); got != tt.want {
			t.Errorf("TagOf(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
