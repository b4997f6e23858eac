package grammar

import (
	"regexp"
	"strings"
)

var (
	reMultiSpace     = regexp.MustCompile(` {2,}`)
	reTrailingSpaces = regexp.MustCompile(` +\n`)
	spaceReplacer    = strings.NewReplacer("\u00a0", " ", "\t", " ")
)

// AutoFix normalises spacing: non-breaking spaces and tabs become plain
// spaces, runs of spaces collapse to one and spaces before a newline are
// dropped.
func AutoFix(text string) string {
	text = spaceReplacer.Replace(text)
	text = reMultiSpace.ReplaceAllString(text, " ")
	return reTrailingSpaces.ReplaceAllString(text, "\n")
}
