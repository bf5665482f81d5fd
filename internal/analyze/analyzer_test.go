package analyze

import (
	"context"
	"reflect"
	"testing"
)

func TestAnalyzeEndToEnd(t *testing.T) {
	doc := &fakeDoc{
		pages: 40,
		title: "Science Class X",
		headers: map[int]string{
			1:  "UNSOLVED Self Assessment Paper-1",
			11: "SOLVED Sample Question Paper-2",
			21: "SOLUTIONS Sample Question Paper-2",
		},
	}

	a := NewAnalyzer(Options{Workers: 4})
	result, err := a.Analyze(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}

	if result.BookTitle != "Science Class X" {
		t.Errorf("title = %q", result.BookTitle)
	}
	if result.BookStartPage != 1 || result.BookEndPage != 40 {
		t.Errorf("book range = %d-%d, want 1-40", result.BookStartPage, result.BookEndPage)
	}

	want := []Chapter{
		{
			ChapterName: "UNSOLVED Self Assessment Paper-1",
			Tag:         "UNSOLVED",
			StartPage:   1,
			EndPage:     10,
			PDFFilename: "SAP-1.pdf",
			PDFFolder:   "question_papers",
		},
		{
			ChapterName: "SOLVED Sample Question Paper-2",
			Tag:         "SOLVED",
			StartPage:   11,
			EndPage:     20,
			PDFFilename: "SQP-2.pdf",
			PDFFolder:   "question_papers",
		},
		{
			ChapterName: "SOLUTIONS Sample Question Paper-2",
			Tag:         "SOLUTIONS",
			StartPage:   21,
			EndPage:     40,
			PDFFilename: "SQP-2-SOLUTION.pdf",
			PDFFolder:   "answer_keys",
		},
	}
	if !reflect.DeepEqual(result.Chapters, want) {
		t.Errorf("chapters mismatch:\ngot  %+v\nwant %+v", result.Chapters, want)
	}

	// 3 detections over 40 pages with specific patterns: 70 + 5.
	if result.ConfidenceScore != 75 {
		t.Errorf("confidence = %d, want 75", result.ConfidenceScore)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	doc := &fakeDoc{
		pages: 25,
		headers: map[int]string{
			2:  "UNSOLVED Practice Paper-1",
			9:  "Chapter 4: Light",
			17: "SOLUTIONS Sample Question Paper-1",
		},
	}

	a := NewAnalyzer(Options{Workers: 6})
	first, err := a.Analyze(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Analyze(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("analysis not deterministic:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestAnalyzeNoStructure(t *testing.T) {
	doc := &fakeDoc{pages: 12, headers: map[int]string{}}

	a := NewAnalyzer(Options{})
	result, err := a.Analyze(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}

	if result.ConfidenceScore != 30 {
		t.Errorf("confidence = %d, want 30", result.ConfidenceScore)
	}
	if len(result.Chapters) != 0 {
		t.Errorf("got %d chapters, want 0", len(result.Chapters))
	}
	if result.BookEndPage != 12 {
		t.Errorf("book end = %d, want 12", result.BookEndPage)
	}
}
