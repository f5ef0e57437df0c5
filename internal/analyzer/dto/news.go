package dto

// NewsArticle is a single article returned by a news provider.
type NewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// NewsSearchResponse is the normalized news provider response.
type NewsSearchResponse struct {
	Articles []NewsArticle `json:"articles"`
}

// TavilyNewsResponse covers both shapes the news endpoint is known to return.
type TavilyNewsResponse struct {
	Articles []NewsArticle `json:"articles"`
	Results  []NewsArticle `json:"results"`
}
