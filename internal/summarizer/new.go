package summarizer

import (
	"context"
	"sync"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

// PlaceholderText is returned by the placeholder summarizer.
const PlaceholderText = "Summary generation is not yet implemented. Placeholder summary inserted."

type placeholderSummarizer struct{}

// NewPlaceholder returns a Summarizer that always yields PlaceholderText.
func NewPlaceholder() Summarizer {
	return placeholderSummarizer{}
}

// generateFunc sends one prompt with one API key.
type generateFunc func(ctx context.Context, apiKey, model, prompt string) (string, error)

type implSummarizer struct {
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
	generate   generateFunc

	mu sync.Mutex
}

// NewGemini creates a Summarizer that rotates through the supplied Gemini API keys.
func NewGemini(apiKeys []string, model string, log logger.Logger) Summarizer {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &implSummarizer{
		apiKeys:  apiKeys,
		logger:   log,
		model:    model,
		generate: generateGemini,
	}
}
