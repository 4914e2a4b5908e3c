// interfaces.go - Handler interface definitions for clean separation of concerns
package api

import (
	"github.com/labstack/echo/v4"
)

// ExtractHandler handles PDF text extraction operations
type ExtractHandler interface {
	HandleExtract(c echo.Context) error
	HandleExtractMsgpack(c echo.Context) error
}

// HealthHandler handles health check operations
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}

// RootHandler handles the informational service index
type RootHandler interface {
	HandleRoot(c echo.Context) error
}
