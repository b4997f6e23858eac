package action

import (
	"context"

	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

// Extract evaluates every paragraph on its own, in block then paragraph
// order. The first matcher that accepts a paragraph wins.
func (e *implExtractor) Extract(ctx context.Context, blocks []transcript.ParagraphBlock) []Item {
	var items []Item
	for _, b := range blocks {
		for _, p := range b.Paragraphs {
			m, ok := e.match(p)
			if !ok {
				continue
			}
			if e.debug {
				e.logger.Info(ctx, "[RULE %s] Matched %q for %s: %s", m.Tier, m.Keyword, b.Speaker, p)
			}
			items = append(items, Item{
				Speaker: b.Speaker,
				Text:    p,
				Source:  m.Source,
				Tier:    m.Tier,
				Reason:  m.Reason,
			})
		}
	}
	return items
}

func (e *implExtractor) match(text string) (Match, bool) {
	for _, m := range e.matchers {
		if res, ok := m.Match(text); ok {
			return res, true
		}
	}
	return Match{}, false
}
