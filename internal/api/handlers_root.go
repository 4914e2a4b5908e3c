// handlers_root.go - Informational service index handler
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RootHandlerImpl implements the RootHandler interface
type RootHandlerImpl struct{}

// NewRootHandler creates a new root handler
func NewRootHandler() RootHandler {
	return &RootHandlerImpl{}
}

// HandleRoot lists the available endpoints
func (h *RootHandlerImpl) HandleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "PDF text extraction service is running",
		"endpoints": map[string]string{
			"/extract-pdf-text":         "POST",
			"/extract-pdf-text/msgpack": "POST",
			"/health":                   "GET",
		},
	})
}
