// extraction.go - Result envelope and quality metadata for PDF text extraction
package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Quality is a coarse label approximating how much usable text was recovered
// from a document, based solely on total character count.
type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityPoor      Quality = "poor"
	QualityFailed    Quality = "failed"
)

// Extraction method tags reported in metadata.
const (
	MethodPDFPlumber       = "pdfplumber"
	MethodPDFPlumberFailed = "pdfplumber_failed"
)

// QualityForCharacters classifies extracted text by its character count.
// Thresholds are exclusive lower bounds: >1000 excellent, >500 good,
// >100 poor, everything else failed.
func QualityForCharacters(chars int) Quality {
	switch {
	case chars > 1000:
		return QualityExcellent
	case chars > 500:
		return QualityGood
	case chars > 100:
		return QualityPoor
	default:
		return QualityFailed
	}
}

// ExtractionMetadata describes the outcome of a single extraction.
type ExtractionMetadata struct {
	Pages          int     `json:"pages" msgpack:"pages"`
	Characters     int     `json:"characters" msgpack:"characters"`
	Words          int     `json:"words" msgpack:"words"`
	Quality        Quality `json:"quality" msgpack:"quality"`
	Method         string  `json:"method" msgpack:"method"`
	ExtractionTime string  `json:"extraction_time" msgpack:"extraction_time"`
}

// ExtractionResult is the outcome of extracting text from one document.
// On failure Text is empty, all counters are zero and Error carries the
// underlying open/parse error.
type ExtractionResult struct {
	Success  bool               `json:"success" msgpack:"success"`
	Error    string             `json:"error,omitempty" msgpack:"error,omitempty"`
	Text     string             `json:"text" msgpack:"text"`
	Metadata ExtractionMetadata `json:"metadata" msgpack:"metadata"`
}

// NewExtractionResult builds a successful result from the concatenated text
// and the total number of pages the document reported.
func NewExtractionResult(text string, pages int) *ExtractionResult {
	chars := utf8.RuneCountInString(text)
	return &ExtractionResult{
		Success: true,
		Text:    text,
		Metadata: ExtractionMetadata{
			Pages:          pages,
			Characters:     chars,
			Words:          len(strings.Fields(text)),
			Quality:        QualityForCharacters(chars),
			Method:         MethodPDFPlumber,
			ExtractionTime: time.Now().UTC().Format(time.RFC3339),
		},
	}
}

// NewFailedExtraction builds a failure result with zeroed counters.
func NewFailedExtraction(errMsg string) *ExtractionResult {
	return &ExtractionResult{
		Success: false,
		Error:   errMsg,
		Metadata: ExtractionMetadata{
			Quality:        QualityFailed,
			Method:         MethodPDFPlumberFailed,
			ExtractionTime: time.Now().UTC().Format(time.RFC3339),
		},
	}
}
