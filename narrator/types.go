// Package narrator provides engine.TextGenerator implementations backed by
// hosted language models. Each one only ever sees the prompt built from
// aggregated figures.
package narrator

import (
	"time"
	"unicode/utf8"

	"github.com/pranavsawarkar14/Real-Estate-Analysis/engine"
)

// Config holds generator configuration.
type Config struct {
	APIKey   string        // provider API key
	Model    string        // model name (e.g. "gemini-pro")
	Endpoint string        // API endpoint override (empty = default)
	Timeout  time.Duration // HTTP client timeout (0 = 30s)
}

// Gemini defaults.
const (
	DefaultGeminiModel    = "gemini-pro"
	DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultOpenAIModel    = "gpt-4o-mini"

	defaultHTTPTimeout = 30 * time.Second
)

// DefaultGeminiConfig returns a Config with the Gemini defaults.
func DefaultGeminiConfig(apiKey string) Config {
	return Config{
		APIKey:   apiKey,
		Model:    DefaultGeminiModel,
		Endpoint: DefaultGeminiEndpoint,
	}
}

// DefaultOpenAIConfig returns a Config with the OpenAI defaults.
func DefaultOpenAIConfig(apiKey string) Config {
	return Config{
		APIKey: apiKey,
		Model:  DefaultOpenAIModel,
	}
}

var (
	_ engine.TextGenerator = (*Gemini)(nil)
	_ engine.TextGenerator = (*OpenAI)(nil)
	_ engine.TextGenerator = (*Limited)(nil)
)

// truncate cuts s to at most maxLen bytes on a rune boundary.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
