package transcript

import (
	"regexp"
	"strings"
)

// Labels start with a letter in any script; marks cover decomposed accents.
var reSpeaker = regexp.MustCompile(`^(\p{L}[\p{L}\p{M}\p{N}_\s.\-]*):\s*(.*)$`)

// ParseSpeaker splits a "Name: text" line. It reports false when the line
// does not start with a speaker label.
func ParseSpeaker(line string) (label, remainder string, ok bool) {
	m := reSpeaker.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	label = strings.TrimSpace(m[1])
	if label == "" {
		return "", "", false
	}
	return label, strings.TrimSpace(m[2]), true
}

// Grouper accumulates normalized lines into SpeakerBlocks.
//
// Lines that arrive before the first speaker label have no owner and are
// dropped. A speaker label with no text of its own does not end the running
// block, so a run like "A: x", "B:", "A: y" yields a single block for A.
// Use a fresh Grouper per transcript.
type Grouper struct {
	current string // speaker continuation lines belong to
	owner   string // speaker of the buffered lines
	buf     []string
}

// NewGrouper returns an empty Grouper.
func NewGrouper() *Grouper {
	return &Grouper{}
}

// Observe feeds one normalized line. When the line closes the running block
// that block is returned.
func (g *Grouper) Observe(line string) (SpeakerBlock, bool) {
	text := strings.TrimSpace(line)
	if label, rest, ok := ParseSpeaker(text); ok {
		g.current = label
		text = rest
	}

	if g.current == "" || text == "" {
		return SpeakerBlock{}, false
	}

	var done SpeakerBlock
	var flushed bool
	if g.owner != g.current {
		done, flushed = g.flush()
		g.owner = g.current
	}
	g.buf = append(g.buf, text)
	return done, flushed
}

// Finish returns the last block, if any, and resets the Grouper.
func (g *Grouper) Finish() (SpeakerBlock, bool) {
	done, ok := g.flush()
	g.current, g.owner = "", ""
	return done, ok
}

func (g *Grouper) flush() (SpeakerBlock, bool) {
	if g.owner == "" || len(g.buf) == 0 {
		g.buf = nil
		return SpeakerBlock{}, false
	}
	b := SpeakerBlock{Speaker: g.owner, Lines: g.buf}
	g.buf = nil
	return b, true
}

// GroupBySpeaker runs a fresh Grouper over lines.
func GroupBySpeaker(lines []string) []SpeakerBlock {
	g := NewGrouper()
	var blocks []SpeakerBlock
	for _, l := range lines {
		if b, ok := g.Observe(l); ok {
			blocks = append(blocks, b)
		}
	}
	if b, ok := g.Finish(); ok {
		blocks = append(blocks, b)
	}
	return blocks
}
