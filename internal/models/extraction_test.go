// extraction_test.go - Tests for extraction result construction and quality labels
package models

import (
	"strings"
	"testing"
)

func TestQualityForCharacters(t *testing.T) {
	tests := []struct {
		name  string
		chars int
		want  Quality
	}{
		{name: "zero characters", chars: 0, want: QualityFailed},
		{name: "boundary 100 stays failed", chars: 100, want: QualityFailed},
		{name: "101 becomes poor", chars: 101, want: QualityPoor},
		{name: "boundary 500 stays poor", chars: 500, want: QualityPoor},
		{name: "501 becomes good", chars: 501, want: QualityGood},
		{name: "boundary 1000 stays good", chars: 1000, want: QualityGood},
		{name: "1001 becomes excellent", chars: 1001, want: QualityExcellent},
		{name: "large document", chars: 250000, want: QualityExcellent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QualityForCharacters(tt.chars); got != tt.want {
				t.Errorf("QualityForCharacters(%d) = %q, want %q", tt.chars, got, tt.want)
			}
		})
	}
}

func TestNewExtractionResult(t *testing.T) {
	text := "\n=== PAGE 1 ===\n\nHello world"
	result := NewExtractionResult(text, 3)

	if !result.Success {
		t.Error("expected Success to be true")
	}
	if result.Error != "" {
		t.Errorf("expected empty Error, got %q", result.Error)
	}
	if result.Text != text {
		t.Errorf("expected text to pass through unchanged, got %q", result.Text)
	}
	if result.Metadata.Pages != 3 {
		t.Errorf("expected 3 pages, got %d", result.Metadata.Pages)
	}
	if result.Metadata.Characters != len([]rune(text)) {
		t.Errorf("expected %d characters, got %d", len([]rune(text)), result.Metadata.Characters)
	}
	if result.Metadata.Words != 6 {
		t.Errorf("expected 6 words, got %d", result.Metadata.Words)
	}
	if result.Metadata.Quality != QualityFailed {
		t.Errorf("expected quality %q for short text, got %q", QualityFailed, result.Metadata.Quality)
	}
	if result.Metadata.Method != MethodPDFPlumber {
		t.Errorf("expected method %q, got %q", MethodPDFPlumber, result.Metadata.Method)
	}
	if result.Metadata.ExtractionTime == "" {
		t.Error("expected non-empty extraction time")
	}
}

func TestNewExtractionResult_CountsRunes(t *testing.T) {
	// Multi-byte characters count once each, matching the text length
	// invariant rather than the byte length.
	text := "héllo wörld"
	result := NewExtractionResult(text, 1)

	if result.Metadata.Characters != 11 {
		t.Errorf("expected 11 characters, got %d", result.Metadata.Characters)
	}
	if result.Metadata.Words != 2 {
		t.Errorf("expected 2 words, got %d", result.Metadata.Words)
	}
}

func TestNewExtractionResult_EmptyText(t *testing.T) {
	result := NewExtractionResult("", 2)

	if !result.Success {
		t.Error("expected Success to be true for empty text")
	}
	if result.Metadata.Characters != 0 || result.Metadata.Words != 0 {
		t.Errorf("expected zero counters, got chars=%d words=%d",
			result.Metadata.Characters, result.Metadata.Words)
	}
	if result.Metadata.Pages != 2 {
		t.Errorf("expected pages to reflect pages opened, got %d", result.Metadata.Pages)
	}
	if result.Metadata.Quality != QualityFailed {
		t.Errorf("expected quality %q, got %q", QualityFailed, result.Metadata.Quality)
	}
}

func TestNewExtractionResult_QualityTracksLength(t *testing.T) {
	long := strings.Repeat("lorem ipsum ", 100) // 1200 characters
	result := NewExtractionResult(long, 1)

	if result.Metadata.Quality != QualityExcellent {
		t.Errorf("expected quality %q, got %q", QualityExcellent, result.Metadata.Quality)
	}
	if result.Metadata.Words != 200 {
		t.Errorf("expected 200 words, got %d", result.Metadata.Words)
	}
}

func TestNewFailedExtraction(t *testing.T) {
	result := NewFailedExtraction("open pdf: malformed xref table")

	if result.Success {
		t.Error("expected Success to be false")
	}
	if result.Error != "open pdf: malformed xref table" {
		t.Errorf("unexpected error message: %q", result.Error)
	}
	if result.Text != "" {
		t.Errorf("expected empty text, got %q", result.Text)
	}
	m := result.Metadata
	if m.Pages != 0 || m.Characters != 0 || m.Words != 0 {
		t.Errorf("expected zeroed counters, got pages=%d chars=%d words=%d",
			m.Pages, m.Characters, m.Words)
	}
	if m.Quality != QualityFailed {
		t.Errorf("expected quality %q, got %q", QualityFailed, m.Quality)
	}
	if m.Method != MethodPDFPlumberFailed {
		t.Errorf("expected method %q, got %q", MethodPDFPlumberFailed, m.Method)
	}
	if m.ExtractionTime == "" {
		t.Error("expected non-empty extraction time")
	}
}
