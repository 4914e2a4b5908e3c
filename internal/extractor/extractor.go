// Package extractor pulls plain text out of PDF documents page by page.
package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"

	"github.com/pdf-extractor/backend/internal/models"
)

// Extractor turns raw document bytes into an ExtractionResult.
type Extractor interface {
	Extract(data []byte) *models.ExtractionResult
}

// PDFExtractor implements Extractor on top of the ledongthuc/pdf reader.
// It holds no per-request state and is safe for concurrent use.
type PDFExtractor struct {
	log zerolog.Logger
}

// Compile-time interface check.
var _ Extractor = (*PDFExtractor)(nil)

// NewPDFExtractor creates a PDF extractor that reports per-page outcomes
// through the given logger.
func NewPDFExtractor(log zerolog.Logger) *PDFExtractor {
	return &PDFExtractor{log: log}
}

// Extract opens the byte sequence as a PDF and walks its pages in order.
// A document that cannot be opened fails the whole call; a page that cannot
// be read is skipped. The returned result is never nil.
func (e *PDFExtractor) Extract(data []byte) (result *models.ExtractionResult) {
	// The reader panics on some malformed cross-reference tables instead of
	// returning an error; fold those into the open-failure path.
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn().Str("panic", fmt.Sprint(r)).Msg("pdf reader panicked")
			result = models.NewFailedExtraction(fmt.Sprint(r))
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.log.Warn().Err(err).Msg("failed to open pdf")
		return models.NewFailedExtraction(err.Error())
	}

	totalPages := r.NumPage()
	var text strings.Builder
	for i := 1; i <= totalPages; i++ {
		pageText, err := readPageText(r, i)
		if err != nil {
			e.log.Warn().Int("page", i).Err(err).Msg("skipping unreadable page")
			continue
		}
		if pageText == "" {
			e.log.Debug().Int("page", i).Msg("page has no text")
			continue
		}
		fmt.Fprintf(&text, "\n=== PAGE %d ===\n\n%s", i, pageText)
		e.log.Debug().Int("page", i).Int("chars", len(pageText)).Msg("extracted page")
	}

	return models.NewExtractionResult(text.String(), totalPages)
}

// readPageText returns one page's plain text with surrounding whitespace
// trimmed. Page-level panics from the reader are converted to errors so a
// single bad page never aborts the document.
func readPageText(r *pdf.Reader, n int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("%v", rec)
		}
	}()

	page := r.Page(n)
	if page.V.IsNull() {
		return "", errors.New("page unavailable")
	}
	content, err := page.GetPlainText(nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}
