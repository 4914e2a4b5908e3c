// routes.go - Route registration helpers
// This file provides a clean way to register all API routes
package api

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pdf-extractor/backend/internal/extractor"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Extractor   extractor.Extractor
	MaxFileSize int64
	Version     string
	Log         zerolog.Logger
}

// Handlers holds all handler instances
type Handlers struct {
	Health  HealthHandler
	Extract ExtractHandler
	Root    RootHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(deps.Version),
		Extract: NewExtractHandler(deps.Extractor, deps.MaxFileSize, deps.Log),
		Root:    NewRootHandler(),
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers) {
	e.GET("/", handlers.Root.HandleRoot)
	e.GET("/health", handlers.Health.HandleHealth)

	// Extraction routes
	e.POST("/extract-pdf-text", handlers.Extract.HandleExtract)
	e.POST("/extract-pdf-text/msgpack", handlers.Extract.HandleExtractMsgpack)
}

// SetupMiddleware configures common middleware
func SetupMiddleware(e *echo.Echo) {
	// Use custom error handler
	e.HTTPErrorHandler = ErrorHandler
}
