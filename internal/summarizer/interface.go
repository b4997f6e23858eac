package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

// Summarizer produces a short Markdown summary of a meeting.
type Summarizer interface {
	Summarize(ctx context.Context, blocks []transcript.ParagraphBlock) (string, error)
}
