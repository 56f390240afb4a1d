package config

// AnalyzerConfig configures the question-bank analysis call. The analyzer is
// an optional collaborator: with no API key set the service returns the
// bundled fallback analysis instead of calling out.
type AnalyzerConfig struct {
	APIKey      string  `json:"-"` // never serialize
	BaseURL     string  `json:"baseUrl"`
	Model       string  `json:"model"`
	MaxTokens   int     `json:"maxTokens"`
	Temperature float64 `json:"temperature"`
	TimeoutMS   int     `json:"timeoutMs"`
}

// DefaultAnalyzerConfig returns the analyzer configuration from the
// environment.
func DefaultAnalyzerConfig() *AnalyzerConfig {
	return &AnalyzerConfig{
		APIKey:      getEnv("OPENAI_API_KEY", ""),
		BaseURL:     getEnv("ANALYSIS_BASE_URL", "https://api.openai.com/v1"),
		Model:       getEnv("ANALYSIS_MODEL", "gpt-5.2"),
		MaxTokens:   16000,
		Temperature: 0.7,
		TimeoutMS:   120000,
	}
}

// IsEnabled reports whether the analysis API is configured.
func (c *AnalyzerConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// Endpoint returns the chat-completions endpoint.
func (c *AnalyzerConfig) Endpoint() string {
	return c.BaseURL + "/chat/completions"
}
