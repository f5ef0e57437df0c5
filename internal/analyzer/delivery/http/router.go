package http

import (
	"io/fs"

	"golang-stock-analyzer/internal/analyzer/service"
	"golang-stock-analyzer/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	swagger "github.com/swaggo/echo-swagger"
)

// NewServer builds the Echo server with middleware and every route registered:
// the page at "/", analysis and health at the root and under /api/v1, and swagger docs.
func NewServer(analyzer service.AnalyzerService, apisConfigured map[string]bool, static fs.FS, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(log)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestContext(log))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	analyzerHandler := NewAnalyzerHandler(analyzer, log)
	healthHandler := NewHealthHandler(apisConfigured)
	pageHandler := NewPageHandler(static)

	root := e.Group("")
	pageHandler.RegisterRoutes(root)
	analyzerHandler.RegisterRoutes(root)
	healthHandler.RegisterRoutes(root)

	apiV1 := e.Group("/api/v1")
	analyzerHandler.RegisterRoutes(apiV1)
	healthHandler.RegisterRoutes(apiV1)

	e.GET("/swagger/*", swagger.WrapHandler)

	return e
}
