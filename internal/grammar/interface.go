// Package grammar talks to a LanguageTool grammar checker and applies the
// few fixes that are safe to make without review.
package grammar

import "context"

// Issue is one problem reported for a paragraph.
type Issue struct {
	RuleID       string
	Message      string
	Context      string
	Replacements []string
	Offset       int
	Length       int
}

// Checker reports grammar issues in a paragraph.
type Checker interface {
	Check(ctx context.Context, text string) ([]Issue, error)
}
