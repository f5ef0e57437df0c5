package common

const (
	LLMProviderGroq       = "groq"
	LLMProviderOpenAI     = "openai"
	LLMProviderOpenRouter = "openrouter"
	LLMProviderGemini     = "gemini"

	NewsProviderTavily    = "tavily"
	NewsProviderGoogleRSS = "google_rss"

	DefaultConversionRate = 82.0
	DefaultNewsLimit      = 5
)
