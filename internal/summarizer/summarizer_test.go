package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

var blocks = []transcript.ParagraphBlock{
	{Speaker: "Alice", Paragraphs: []string{"We ship on Friday.", "Bob owns the release notes."}},
	{Speaker: "Bob", Paragraphs: []string{"Agreed."}},
}

func TestPlaceholder(t *testing.T) {
	got, err := NewPlaceholder().Summarize(context.Background(), blocks)
	if err != nil || got != PlaceholderText {
		t.Errorf("Summarize() = %q, %v", got, err)
	}
}

func TestFormatTranscript(t *testing.T) {
	want := "Alice: We ship on Friday.\nAlice: Bob owns the release notes.\nBob: Agreed.\n"
	if got := formatTranscript(blocks); got != want {
		t.Errorf("formatTranscript() = %q, want %q", got, want)
	}
}

func newTestSummarizer(keys []string, gen generateFunc) *implSummarizer {
	s := NewGemini(keys, "", logger.Nop()).(*implSummarizer)
	s.generate = gen
	return s
}

func TestGeminiRotatesOnQuota(t *testing.T) {
	var used []string
	s := newTestSummarizer([]string{"k1", "k2", "k3"}, func(ctx context.Context, key, model, prompt string) (string, error) {
		used = append(used, key)
		if model != "gemini-2.5-flash" {
			t.Errorf("model = %q", model)
		}
		if !strings.Contains(prompt, "Alice: We ship on Friday.") {
			t.Errorf("prompt lacks transcript: %q", prompt)
		}
		if key == "k3" {
			return "  - Release on Friday\n", nil
		}
		return "", errors.New("Error 429, RESOURCE_EXHAUSTED")
	})

	got, err := s.Summarize(context.Background(), blocks)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "- Release on Friday" {
		t.Errorf("Summarize() = %q", got)
	}
	if strings.Join(used, ",") != "k1,k2,k3" {
		t.Errorf("keys used = %v", used)
	}
}

func TestGeminiAllKeysExhausted(t *testing.T) {
	s := newTestSummarizer([]string{"k1", "k2"}, func(ctx context.Context, key, model, prompt string) (string, error) {
		return "", errors.New("quota exceeded")
	})
	_, err := s.Summarize(context.Background(), blocks)
	if err == nil || !strings.Contains(err.Error(), "exhausted") {
		t.Errorf("Summarize() error = %v, want exhausted", err)
	}
}

func TestGeminiHardFailureStops(t *testing.T) {
	calls := 0
	s := newTestSummarizer([]string{"k1", "k2"}, func(ctx context.Context, key, model, prompt string) (string, error) {
		calls++
		return "", errors.New("permission denied")
	})
	if _, err := s.Summarize(context.Background(), blocks); err == nil {
		t.Fatal("Summarize() should fail")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestGeminiWithoutKeys(t *testing.T) {
	if _, err := NewGemini(nil, "", logger.Nop()).Summarize(context.Background(), blocks); err == nil {
		t.Error("Summarize() without keys should fail")
	}
}
