// Package render turns processed transcripts into Markdown and DOCX.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/action"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

// Document is everything that goes into one rendered transcript.
type Document struct {
	Date    string
	Blocks  []transcript.ParagraphBlock
	Summary string
	Actions []action.Item
	// WithActions renders the action items section even when it is empty.
	WithActions bool
}

// Markdown renders doc. The summary and action item sections are emitted
// only when there is something to show, or when WithActions is set.
func Markdown(doc Document) string {
	var b strings.Builder

	date := doc.Date
	if date == "" {
		date = UnknownDate
	}
	speakers := transcript.Speakers(doc.Blocks)
	sort.Strings(speakers)

	b.WriteString("## Meeting Details\n")
	fmt.Fprintf(&b, "- **Date:** %s\n", date)
	fmt.Fprintf(&b, "- **Attendees:** %s\n", strings.Join(speakers, ", "))
	b.WriteString("\n")

	if doc.Summary != "" {
		b.WriteString("## Summary\n")
		b.WriteString(strings.TrimSpace(doc.Summary))
		b.WriteString("\n\n")
	}

	if doc.WithActions || len(doc.Actions) > 0 {
		b.WriteString("## Action Items\n")
		if len(doc.Actions) == 0 {
			b.WriteString("_No action items detected._\n")
		}
		for _, a := range doc.Actions {
			fmt.Fprintf(&b, "- [ ] **%s:** %s _(%s: %s)_\n", a.Speaker, a.Text, a.Tier, a.Reason)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Full Transcript\n")
	for _, blk := range doc.Blocks {
		fmt.Fprintf(&b, "\n**%s:**\n", blk.Speaker)
		for _, p := range blk.Paragraphs {
			fmt.Fprintf(&b, "\n%s\n", p)
		}
	}

	return b.String()
}
