package transcript

import (
	"regexp"
	"strings"
)

const captionHeader = "WEBVTT"

var (
	reTimestamp = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}`)
	reSequence  = regexp.MustCompile(`^\d+$`)
	reVoiceTag  = regexp.MustCompile(`^<v(?:\.[\w.-]+)?\s+([^>]+)>\s*`)
)

// reCueTag matches WebVTT cue markup only: class spans, voice and language
// spans with an annotation, and cue timestamps. Other angle brackets are speech.
var reCueTag = regexp.MustCompile(`</?(?:[cibu]|ruby|rt)(?:\.[\w-]+)*>|</?(?:v|lang)(?:\.[\w-]+)*(?:\s[^<>]*)?>|<(?:\d+:)?\d{2}:\d{2}\.\d{3}>`)

// Normalize strips caption artifacts from raw input lines: the WEBVTT
// header, cue timings, sequence numbers and inline cue tags. Surviving lines
// are trimmed. WebVTT voice tags become "Name: text" so that the speaker is
// still recognised downstream.
func Normalize(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if l, ok := NormalizeLine(line); ok {
			out = append(out, l)
		}
	}
	return out
}

// NormalizeLine applies the normalization rules to a single line. It reports
// false when the line must be dropped.
func NormalizeLine(line string) (string, bool) {
	line = stripCueTags(strings.TrimSpace(line))

	if isCaptionHeader(line) {
		return "", false
	}
	if reTimestamp.MatchString(line) || strings.Contains(line, "-->") {
		return "", false
	}
	if reSequence.MatchString(line) {
		return "", false
	}

	return line, true
}

func isCaptionHeader(line string) bool {
	if len(line) < len(captionHeader) || !strings.EqualFold(line[:len(captionHeader)], captionHeader) {
		return false
	}
	rest := line[len(captionHeader):]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// stripCueTags repeats until the line is stable, since removing a tag can
// expose another one.
func stripCueTags(line string) string {
	for strings.Contains(line, "<") {
		next := stripCueTagsOnce(line)
		if next == line {
			break
		}
		line = next
	}
	return line
}

func stripCueTagsOnce(line string) string {
	if m := reVoiceTag.FindStringSubmatch(line); m != nil {
		line = strings.TrimSpace(m[1]) + ": " + line[len(m[0]):]
	}
	return strings.TrimSpace(reCueTag.ReplaceAllString(line, ""))
}
