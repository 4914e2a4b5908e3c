package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pdf-extractor/backend/internal/extractor"
	"github.com/pdf-extractor/backend/internal/models"
	"github.com/pdf-extractor/backend/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// newTestServer wires the real extractor behind the full route table so
// requests travel through routing and the error handler.
func newTestServer(maxFileSize int64) *echo.Echo {
	e := echo.New()
	SetupMiddleware(e)
	handlers := NewHandlers(&Dependencies{
		Extractor:   extractor.NewPDFExtractor(zerolog.Nop()),
		MaxFileSize: maxFileSize,
		Version:     "test",
		Log:         zerolog.Nop(),
	})
	RegisterRoutes(e, handlers)
	return e
}

func TestServiceFlow(t *testing.T) {
	e := newTestServer(10 * 1024 * 1024)

	// 1. Service index
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/extract-pdf-text"`)
	assert.Contains(t, rec.Body.String(), `"/health"`)

	// 2. Health check
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var health map[string]string
	if assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health)) {
		assert.Equal(t, "healthy", health["status"])
		assert.Equal(t, ServiceName, health["service"])
		assert.Equal(t, "test", health["version"])
		_, err := time.Parse(time.RFC3339, health["timestamp"])
		assert.NoError(t, err)
	}

	// 3. Extract a three page document with a blank middle page
	pdfData := testutil.BuildMultiPagePDF([]string{"Hello", "", "Hello"})
	body, contentType := multipartFile(t, "file", "scan report.pdf", pdfData)
	req = httptest.NewRequest(http.MethodPost, "/extract-pdf-text", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response extractResponse
	if assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response)) {
		assert.True(t, response.Success)
		assert.Equal(t, "scan_report.pdf", response.Filename)
		assert.Equal(t, "\n=== PAGE 1 ===\n\nHello\n=== PAGE 3 ===\n\nHello", response.Text)
		assert.Equal(t, 3, response.Metadata.Pages)
		assert.Equal(t, 44, response.Metadata.Characters)
		assert.Equal(t, 10, response.Metadata.Words)
		assert.Equal(t, models.QualityFailed, response.Metadata.Quality)
		assert.Equal(t, models.MethodPDFPlumber, response.Metadata.Method)
	}
}

func TestServiceErrorResponses(t *testing.T) {
	t.Run("wrong extension over the wire", func(t *testing.T) {
		e := newTestServer(10 * 1024 * 1024)

		body, contentType := multipartFile(t, "file", "notes.txt", []byte("plain text"))
		req := httptest.NewRequest(http.MethodPost, "/extract-pdf-text", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"File type not allowed"}`, rec.Body.String())
	})

	t.Run("oversized upload over the wire", func(t *testing.T) {
		e := newTestServer(16)

		body, contentType := multipartFile(t, "file", "big.pdf", make([]byte, 64))
		req := httptest.NewRequest(http.MethodPost, "/extract-pdf-text", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"File too large"}`, rec.Body.String())
	})

	t.Run("corrupt pdf over the wire", func(t *testing.T) {
		e := newTestServer(10 * 1024 * 1024)

		body, contentType := multipartFile(t, "file", "broken.pdf", []byte("%PDF-1.4\nnot really a pdf"))
		req := httptest.NewRequest(http.MethodPost, "/extract-pdf-text", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var result models.ExtractionResult
		if assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result)) {
			assert.False(t, result.Success)
			assert.NotEmpty(t, result.Error)
			assert.Equal(t, models.MethodPDFPlumberFailed, result.Metadata.Method)
			assert.Equal(t, 0, result.Metadata.Pages)
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		e := newTestServer(10 * 1024 * 1024)

		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})
}
