package dto

// SymbolSearchResponse is the response from the Finnhub symbol search endpoint.
type SymbolSearchResponse struct {
	Count  int           `json:"count"`
	Result []SymbolMatch `json:"result"`
}

// SymbolMatch is a single ranked match from the symbol search.
type SymbolMatch struct {
	Description   string `json:"description"`
	DisplaySymbol string `json:"displaySymbol"`
	Symbol        string `json:"symbol"`
	Type          string `json:"type"`
}

// QuoteResponse is the response from the Finnhub quote endpoint.
// Fields are pointers because the provider omits or nulls them for unknown symbols.
type QuoteResponse struct {
	Current       *float64 `json:"c"`
	Change        *float64 `json:"d"`
	PercentChange *float64 `json:"dp"`
	High          *float64 `json:"h"`
	Low           *float64 `json:"l"`
	Open          *float64 `json:"o"`
	PreviousClose *float64 `json:"pc"`
	Timestamp     int64    `json:"t"`
}
