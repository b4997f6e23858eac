package transcript

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Splitter re-partitions one speaker's text into paragraphs.
//
// A paragraph is closed once it holds MaxSentences sentences, once its
// sentences add up to MaxChars characters, or right after a sentence that
// contains one of the TopicMarkers (case sensitive).
type Splitter struct {
	MaxSentences int
	MaxChars     int
	TopicMarkers []string
}

// NewSplitter returns a Splitter. Non-positive limits disable that rule.
func NewSplitter(maxSentences, maxChars int, topicMarkers []string) *Splitter {
	return &Splitter{
		MaxSentences: maxSentences,
		MaxChars:     maxChars,
		TopicMarkers: topicMarkers,
	}
}

// Split returns the paragraphs of text. Empty input yields no paragraphs.
func (s *Splitter) Split(text string) []string {
	var (
		paragraphs []string
		buf        []string
		chars      int
	)
	for _, sentence := range SplitSentences(text) {
		buf = append(buf, sentence)
		chars += utf8.RuneCountInString(sentence)

		if s.shouldBreak(len(buf), chars, sentence) {
			paragraphs = append(paragraphs, strings.Join(buf, " "))
			buf, chars = nil, 0
		}
	}
	if len(buf) > 0 {
		paragraphs = append(paragraphs, strings.Join(buf, " "))
	}
	return paragraphs
}

// SplitBlock splits a SpeakerBlock into a ParagraphBlock.
func (s *Splitter) SplitBlock(b SpeakerBlock) ParagraphBlock {
	return ParagraphBlock{Speaker: b.Speaker, Paragraphs: s.Split(b.Text())}
}

func (s *Splitter) shouldBreak(sentences, chars int, last string) bool {
	if s.MaxSentences > 0 && sentences >= s.MaxSentences {
		return true
	}
	if s.MaxChars > 0 && chars >= s.MaxChars {
		return true
	}
	for _, marker := range s.TopicMarkers {
		if marker != "" && strings.Contains(last, marker) {
			return true
		}
	}
	return false
}

// SplitSentences cuts text after '.', '!' or '?' when the terminator is
// followed by whitespace and then an uppercase letter. Abbreviations such as
// "Dr. Smith" split too. Sentences are trimmed and never empty.
func SplitSentences(text string) []string {
	var (
		out   []string
		start int
	)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		next, ok := nextSentenceStart(text, i+1)
		if !ok {
			continue
		}
		if s := strings.TrimSpace(text[start : i+1]); s != "" {
			out = append(out, s)
		}
		start = next
		i = next - 1
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

// nextSentenceStart reports the offset of the uppercase letter that follows
// a whitespace run beginning at pos.
func nextSentenceStart(text string, pos int) (int, bool) {
	j := pos
	for j < len(text) {
		r, size := utf8.DecodeRuneInString(text[j:])
		if !unicode.IsSpace(r) {
			break
		}
		j += size
	}
	if j == pos || j >= len(text) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(text[j:])
	return j, unicode.IsUpper(r)
}
