package repository

import (
	"fmt"

	"golang-stock-analyzer/internal/analyzer/dto"
)

// BuildPriceChangeInfo renders the one-line price context given to the model,
// e.g. "Price changed by 2 USD (1.35%) for Apple Inc (AAPL)".
func BuildPriceChangeInfo(identity dto.TickerIdentity, change dto.ChangeResult) string {
	return fmt.Sprintf("Price changed by %v USD (%.2f%%) for %s (%s)",
		change.AbsoluteChange, change.PercentChange, identity.CompanyName, identity.Symbol)
}

// BuildStockAnalysisPrompt builds the retail-investor analysis prompt.
func BuildStockAnalysisPrompt(priceChangeInfo, newsText string) string {
	promptTemplate := `
You're a financial analyst providing insights for retail investors.

Analyze the recent price change of the company:
- %s

Recent News Headlines and Context:
%s

Provide a concise analysis (2-3 paragraphs) explaining:
1. The possible reasons for this price movement based on the news
2. Key factors that might be influencing the stock
3. What this might mean for potential investors

Keep the analysis professional but accessible to general investors. Don't introduce yourself in the response.
`
	return fmt.Sprintf(promptTemplate, priceChangeInfo, newsText)
}
