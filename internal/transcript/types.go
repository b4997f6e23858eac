// Package transcript turns raw caption or plain-text transcript lines into
// speaker-attributed paragraphs.
package transcript

import "strings"

// SpeakerBlock is the text attributed to one contiguous run of a speaker.
type SpeakerBlock struct {
	Speaker string
	Lines   []string
}

// Text joins the block's lines with single spaces.
func (b SpeakerBlock) Text() string {
	return strings.Join(b.Lines, " ")
}

// ParagraphBlock is a SpeakerBlock re-partitioned into paragraphs.
type ParagraphBlock struct {
	Speaker    string
	Paragraphs []string
}

// Speakers returns the distinct speaker labels in first-appearance order.
func Speakers(blocks []ParagraphBlock) []string {
	seen := make(map[string]bool)
	var out []string
	for _, b := range blocks {
		if seen[b.Speaker] {
			continue
		}
		seen[b.Speaker] = true
		out = append(out, b.Speaker)
	}
	return out
}
