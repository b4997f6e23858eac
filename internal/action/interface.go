// Package action flags paragraphs that read like commitments or follow-ups.
package action

import (
	"context"

	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

// Tier is the confidence attached to a match.
type Tier string

const (
	TierHigh       Tier = "HIGH"
	TierLow        Tier = "LOW"
	TierLinguistic Tier = "NLP"
)

// Match describes why a matcher accepted a paragraph.
type Match struct {
	Source  string
	Tier    Tier
	Keyword string
	Reason  string
}

// Matcher decides whether a paragraph contains an action.
type Matcher interface {
	Match(text string) (Match, bool)
}

// Item is one flagged paragraph.
type Item struct {
	Speaker string
	Text    string
	Source  string
	Tier    Tier
	Reason  string
}

// Extractor runs the matcher chain over paragraph blocks.
type Extractor interface {
	Extract(ctx context.Context, blocks []transcript.ParagraphBlock) []Item
}
