package dto

// TickerIdentity is the resolved ticker. Symbol and CompanyName always come from the same search match.
type TickerIdentity struct {
	Symbol      string
	CompanyName string
}

// Quote is the provider quote for a symbol. PreviousClose is nil when the provider omitted it.
type Quote struct {
	CurrentPrice  float64
	PreviousClose *float64
}

// ChangeResult holds the day change, both values rounded to 2 decimals.
type ChangeResult struct {
	AbsoluteChange float64
	PercentChange  float64
}

// NewsBundle is the news context handed to the summarizer.
type NewsBundle struct {
	CombinedText string
	ArticleCount int
}

// AnalysisResult is the stock snapshot returned on success.
type AnalysisResult struct {
	Company      string  `json:"company"`
	Ticker       string  `json:"ticker"`
	Price        float64 `json:"price"`
	PriceINR     float64 `json:"price_inr"`
	Change       float64 `json:"change"`
	ChangeINR    float64 `json:"change_inr"`
	Percent      float64 `json:"percent"`
	Analysis     string  `json:"analysis"`
	NewsArticles int     `json:"news_articles"`
	Timestamp    string  `json:"timestamp"`
}

// FailureKind classifies a failed pipeline run for operators.
type FailureKind string

const (
	FailureInvalidInput        FailureKind = "invalid_input"
	FailureNotFound            FailureKind = "not_found"
	FailureUpstreamUnavailable FailureKind = "upstream_unavailable"
)

// PipelineOutcome is the result of one analysis run. Exactly one of Data and Error is set.
type PipelineOutcome struct {
	Success bool            `json:"success"`
	Data    *AnalysisResult `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Kind    FailureKind     `json:"-"`
}

// Succeeded builds a successful outcome.
func Succeeded(result AnalysisResult) PipelineOutcome {
	return PipelineOutcome{Success: true, Data: &result}
}

// Failed builds a failed outcome carrying a user-facing message.
func Failed(kind FailureKind, message string) PipelineOutcome {
	return PipelineOutcome{Success: false, Error: message, Kind: kind}
}

// AnalyzeRequest is the request body for the analyze endpoint.
type AnalyzeRequest struct {
	Query string `json:"query" example:"Apple"`
}

// HealthResponse reports service status and which provider credentials are present.
type HealthResponse struct {
	Status         string          `json:"status"`
	Timestamp      string          `json:"timestamp"`
	APIsConfigured map[string]bool `json:"apis_configured"`
}

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
