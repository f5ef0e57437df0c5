package http

import (
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the embedded browser client.
type PageHandler struct {
	static fs.FS
}

// NewPageHandler creates a new PageHandler over a filesystem containing index.html.
func NewPageHandler(static fs.FS) *PageHandler {
	return &PageHandler{static: static}
}

// RegisterRoutes registers the page route to the Echo group.
func (h *PageHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/", h.Index)
}

// Index serves index.html.
func (h *PageHandler) Index(c echo.Context) error {
	page, err := fs.ReadFile(h.static, "index.html")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "page not found")
	}
	return c.HTMLBlob(http.StatusOK, page)
}
