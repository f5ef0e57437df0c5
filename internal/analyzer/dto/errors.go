package dto

import "errors"

var (
	ErrInvalidQuery        = errors.New("query is empty")
	ErrTickerNotFound      = errors.New("no ticker matches the query")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrQuoteIncomplete     = errors.New("quote is missing required fields")
	ErrZeroPreviousClose   = errors.New("previous close is zero")
	ErrEmptyCompletion     = errors.New("completion returned no content")
	ErrUnsupportedProvider = errors.New("unsupported provider")
)

// User-facing messages. Raw errors never reach callers; these do.
const (
	MsgInvalidQuery      = "Please enter a company name or ticker symbol."
	MsgTickerNotFound    = "Couldn't identify a valid company in your query. Please try a different company name or ticker symbol."
	MsgPriceUnavailable  = "Unable to fetch current price data. Please try again later."
	MsgChangeUnavailable = "Unable to fetch price change data. Please try again later."

	NoRecentNews     = "No recent news available."
	NoNewsAvailable  = "No news available."
	FallbackAnalysis = "Unable to generate detailed analysis at this time. Please try again later."
)
