package http

import (
	"net/http"
	"strings"

	"golang-stock-analyzer/internal/analyzer/dto"
	"golang-stock-analyzer/internal/analyzer/service"
	"golang-stock-analyzer/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MsgEmptyQuery is returned when the request body carries a blank query.
const MsgEmptyQuery = "Query parameter cannot be empty"

// AnalyzerHandler handles HTTP requests for stock analysis.
type AnalyzerHandler struct {
	analyzer service.AnalyzerService
	logger   *logger.Logger
}

// NewAnalyzerHandler creates a new AnalyzerHandler.
func NewAnalyzerHandler(analyzer service.AnalyzerService, logger *logger.Logger) *AnalyzerHandler {
	return &AnalyzerHandler{analyzer: analyzer, logger: logger}
}

// RegisterRoutes registers the analysis routes to the Echo group.
func (h *AnalyzerHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/analyze", h.Analyze)
}

// Analyze godoc
// @Summary Analyze a stock
// @Description Resolve a company name or ticker, fetch its quote and news, and generate an AI analysis
// @Tags analysis
// @Accept  json
// @Produce  json
// @Param   request  body    dto.AnalyzeRequest   true    "Company name or ticker symbol"
// @Success 200 {object} dto.PipelineOutcome
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analyze [post]
func (h *AnalyzerHandler) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: MsgEmptyQuery})
	}

	ctx := c.Request().Context()
	h.logger.InfoContext(ctx, "Analyze request received", logger.StringField("query", query))

	outcome := h.analyzer.Analyze(ctx, query)
	if !outcome.Success {
		h.logger.InfoContext(ctx, "Analysis failed", logger.StringField("query", query), logger.StringField("kind", string(outcome.Kind)))
		return c.JSON(http.StatusBadRequest, outcome)
	}

	h.logger.InfoContext(ctx, "Analysis completed", logger.StringField("ticker", outcome.Data.Ticker))
	return c.JSON(http.StatusOK, outcome)
}
