// handlers_extract.go - PDF text extraction handlers
package api

import (
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/pdf-extractor/backend/internal/extractor"
	"github.com/pdf-extractor/backend/internal/models"
)

// ExtractHandlerImpl implements the ExtractHandler interface
type ExtractHandlerImpl struct {
	extractor   extractor.Extractor
	maxFileSize int64
	log         zerolog.Logger
}

// NewExtractHandler creates a new extract handler instance
func NewExtractHandler(ext extractor.Extractor, maxFileSize int64, log zerolog.Logger) ExtractHandler {
	return &ExtractHandlerImpl{
		extractor:   ext,
		maxFileSize: maxFileSize,
		log:         log,
	}
}

// extractResponse is the success envelope for extraction requests.
type extractResponse struct {
	Success  bool                      `json:"success" msgpack:"success"`
	Filename string                    `json:"filename" msgpack:"filename"`
	Text     string                    `json:"text" msgpack:"text"`
	Metadata models.ExtractionMetadata `json:"metadata" msgpack:"metadata"`
}

// HandleExtract accepts a PDF as multipart form data (field "file") and
// returns the extracted text with quality metadata as JSON.
func (h *ExtractHandlerImpl) HandleExtract(c echo.Context) error {
	result, filename, err := h.runExtraction(c)
	if err != nil {
		return err
	}
	if !result.Success {
		return c.JSON(http.StatusInternalServerError, result)
	}

	return c.JSON(http.StatusOK, extractResponse{
		Success:  true,
		Filename: filename,
		Text:     result.Text,
		Metadata: result.Metadata,
	})
}

// HandleExtractMsgpack behaves like HandleExtract but encodes the result
// envelope as MessagePack. Input-rejection errors still come back as JSON.
func (h *ExtractHandlerImpl) HandleExtractMsgpack(c echo.Context) error {
	result, filename, err := h.runExtraction(c)
	if err != nil {
		return err
	}

	if !result.Success {
		data, err := msgpack.Marshal(result)
		if err != nil {
			return NewInternalError("failed to encode msgpack", err)
		}
		return c.Blob(http.StatusInternalServerError, "application/msgpack", data)
	}

	data, err := msgpack.Marshal(extractResponse{
		Success:  true,
		Filename: filename,
		Text:     result.Text,
		Metadata: result.Metadata,
	})
	if err != nil {
		return NewInternalError("failed to encode msgpack", err)
	}
	return c.Blob(http.StatusOK, "application/msgpack", data)
}

// runExtraction validates the uploaded form file and hands its bytes to the
// extractor. Validation failures return an *APIError and never reach the
// extractor.
func (h *ExtractHandlerImpl) runExtraction(c echo.Context) (*models.ExtractionResult, string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, "", NewBadRequestError("No file provided")
	}
	if file.Filename == "" {
		return nil, "", NewBadRequestError("Empty filename")
	}
	if !allowedFile(file.Filename) {
		return nil, "", NewBadRequestError("File type not allowed")
	}
	if file.Size > h.maxFileSize {
		return nil, "", NewBadRequestError("File too large")
	}

	src, err := file.Open()
	if err != nil {
		return nil, "", NewInternalError("failed to open uploaded file", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", NewInternalError("failed to read uploaded file", err)
	}

	id := uuid.New().String()
	log := h.log.With().Str("extraction", id[:8]).Logger()
	log.Info().Str("filename", file.Filename).Int("bytes", len(data)).Msg("extraction started")

	result := h.extractor.Extract(data)
	if result.Success {
		log.Info().
			Int("pages", result.Metadata.Pages).
			Int("chars", result.Metadata.Characters).
			Str("quality", string(result.Metadata.Quality)).
			Msg("extraction complete")
	} else {
		log.Warn().Str("error", result.Error).Msg("extraction failed")
	}

	return result, sanitizeFilename(file.Filename), nil
}

// Helper functions

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// allowedFile reports whether the filename carries an allowed extension.
// The name must contain a dot and end in .pdf, case-insensitively.
func allowedFile(filename string) bool {
	ext := filepath.Ext(filename)
	if ext == "" {
		return false
	}
	return strings.EqualFold(ext, ".pdf")
}

// sanitizeFilename strips any path components, turns spaces into
// underscores and drops characters outside the portable filename set
// before the name is echoed back to the client.
func sanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.ReplaceAll(base, " ", "_")
	return unsafeFilenameChars.ReplaceAllString(base, "")
}
