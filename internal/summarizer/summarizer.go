package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
	"google.golang.org/genai"
)

const summaryPrompt = `You are summarizing an internal meeting from its transcript.

Write a concise summary in English:
- Start with one sentence describing the purpose of the meeting
- List the main topics in the order they were discussed
- Note every decision that was made and who made it
- Keep acronyms and product names exactly as written
- Use plain Markdown bullet points, no headings

Transcript:
---
%s
---`

func (placeholderSummarizer) Summarize(ctx context.Context, blocks []transcript.ParagraphBlock) (string, error) {
	return PlaceholderText, nil
}

// Summarize sends the transcript to Gemini and returns the summary text.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) Summarize(ctx context.Context, blocks []transcript.ParagraphBlock) (string, error) {
	if len(s.apiKeys) == 0 {
		return "", fmt.Errorf("no Gemini API keys configured")
	}
	prompt := fmt.Sprintf(summaryPrompt, formatTranscript(blocks))

	var lastErr error
	for range len(s.apiKeys) {
		key, idx := s.key()

		text, err := s.generate(ctx, key, s.model, prompt)
		if err != nil {
			if isQuotaError(err) {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}
		return strings.TrimSpace(text), nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) key() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKeys[s.currentKey], s.currentKey
}

func (s *implSummarizer) rotateKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func formatTranscript(blocks []transcript.ParagraphBlock) string {
	var b strings.Builder
	for _, blk := range blocks {
		for _, p := range blk.Paragraphs {
			fmt.Fprintf(&b, "%s: %s\n", blk.Speaker, p)
		}
	}
	return b.String()
}

func generateGemini(ctx context.Context, apiKey, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
