// pdfgen.go - Programmatic PDF fixtures for extraction tests
package testutil

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Sentinel page contents understood by BuildMultiPagePDF.
const (
	// BrokenPage produces a page whose content stream fails to decode.
	BrokenPage = "\x00broken\x00"
	// MissingPage produces a page object that cannot be resolved at all.
	// Only meaningful as the final entry; the reader skips unresolvable
	// kids while walking the page tree, so an interior one would shift
	// the pages after it.
	MissingPage = "\x00missing\x00"
)

// BuildTextPDF creates a valid single-page PDF containing the given text.
func BuildTextPDF(text string) []byte {
	return BuildMultiPagePDF([]string{text})
}

// BuildMultiPagePDF creates a valid PDF with correct cross-reference
// offsets and one page per entry. An empty entry yields a page without
// text output. Entries must be ASCII; the fixture font declares
// WinAnsiEncoding.
//
// Object layout: 1 catalog, 2 page tree, 3 font, 4..3+n pages,
// 4+n..3+2n content streams.
func BuildMultiPagePDF(pages []string) []byte {
	n := len(pages)
	objCount := 3 + 2*n

	var b strings.Builder
	offsets := make([]int, objCount+1)

	b.WriteString("%PDF-1.4\n")

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	kids := make([]string, n)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 4+i)
	}
	offsets[2] = b.Len()
	fmt.Fprintf(&b, "2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), n)

	offsets[3] = b.Len()
	b.WriteString("3 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>\nendobj\n")

	for i, text := range pages {
		if text == MissingPage {
			continue
		}
		pageObj := 4 + i
		offsets[pageObj] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R /Resources << /Font << /F1 3 0 R >> >> >>\nendobj\n",
			pageObj, 4+n+i)
	}

	for i, text := range pages {
		if text == MissingPage {
			continue
		}
		contentObj := 4 + n + i
		stream := contentStream(text)
		offsets[contentObj] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			contentObj, len(stream), stream)
	}

	xrefOffset := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", objCount+1)
	b.WriteString("0000000000 65535 f \n")
	for i := 1; i <= objCount; i++ {
		if offsets[i] == 0 {
			b.WriteString("0000000000 65535 f \n")
			continue
		}
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		objCount+1, xrefOffset)

	return []byte(b.String())
}

func contentStream(text string) string {
	switch text {
	case BrokenPage:
		// Tf with a missing size argument makes the page reject decoding.
		return "BT\n/F1 Tf\nET"
	case "":
		return "BT\nET"
	default:
		escaped := strings.ReplaceAll(text, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, "(", `\(`)
		escaped = strings.ReplaceAll(escaped, ")", `\)`)
		return "BT\n/F1 12 Tf\n72 720 Td\n(" + escaped + ") Tj\nET"
	}
}

// BuildLargePDF renders a document with gofpdf, repeating line often enough
// per page to push extracted text well past the upper quality thresholds.
func BuildLargePDF(pageCount int, line string) []byte {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	for p := 0; p < pageCount; p++ {
		pdf.AddPage()
		for i := 0; i < 40; i++ {
			pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		panic(fmt.Sprintf("failed to render test pdf: %v", err))
	}
	return buf.Bytes()
}
