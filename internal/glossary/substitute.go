// Package glossary substitutes known jargon and collects unknown acronyms
// for later review.
package glossary

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// contextWindow is the number of words kept on each side of an unknown term.
const contextWindow = 5

var reAcronym = regexp.MustCompile(`\b[A-Z]{2,5}\b`)

// Glossary maps a term as heard to its replacement.
type Glossary map[string]string

// IgnoreSet holds acronyms that must never be reported as unknown.
type IgnoreSet map[string]bool

// Unknowns accumulates unknown acronyms with the snippets they appeared in.
type Unknowns struct {
	Contexts map[string][]string
	Counts   map[string]int
}

// NewUnknowns returns an empty accumulator.
func NewUnknowns() Unknowns {
	return Unknowns{
		Contexts: make(map[string][]string),
		Counts:   make(map[string]int),
	}
}

// Merge adds other into u.
func (u Unknowns) Merge(other Unknowns) {
	for term, ctxs := range other.Contexts {
		u.Contexts[term] = append(u.Contexts[term], ctxs...)
	}
	for term, n := range other.Counts {
		u.Counts[term] += n
	}
}

// Empty reports whether nothing was collected.
func (u Unknowns) Empty() bool {
	return len(u.Counts) == 0
}

// Terms returns the collected terms sorted alphabetically.
func (u Unknowns) Terms() []string {
	terms := make([]string, 0, len(u.Counts))
	for t := range u.Counts {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

type compiledTerm struct {
	re          *regexp.Regexp
	replacement string
}

// Substituter applies a glossary. It holds no per-call state.
type Substituter struct {
	terms  []compiledTerm
	values map[string]bool
	ignore IgnoreSet
}

// NewSubstituter compiles g. Longer terms are applied first so that
// "k8s cluster" wins over "k8s".
func NewSubstituter(g Glossary, ignore IgnoreSet) *Substituter {
	keys := make([]string, 0, len(g))
	for k := range g {
		if strings.TrimSpace(k) != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	s := &Substituter{
		values: make(map[string]bool, len(g)),
		ignore: ignore,
	}
	for _, k := range keys {
		s.terms = append(s.terms, compiledTerm{
			re:          regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(k) + `\b`),
			replacement: g[k],
		})
		s.values[g[k]] = true
	}
	return s
}

// Substitute replaces glossary terms in text and reports the uppercase
// tokens that are neither replacement values nor ignored.
func (s *Substituter) Substitute(text string) (string, Unknowns) {
	for _, t := range s.terms {
		text = t.re.ReplaceAllLiteralString(text, t.replacement)
	}

	unknowns := NewUnknowns()
	for _, token := range reAcronym.FindAllString(text, -1) {
		if s.values[token] || s.ignore[token] {
			continue
		}
		if unknowns.Counts[token] == 0 {
			unknowns.Contexts[token] = extractContext(text, token, contextWindow)
		}
		unknowns.Counts[token]++
	}
	return text, unknowns
}

// Substitute is a convenience wrapper for one-off use.
func Substitute(text string, g Glossary, ignore IgnoreSet) (string, Unknowns) {
	return NewSubstituter(g, ignore).Substitute(text)
}

func extractContext(text, keyword string, window int) []string {
	words := strings.Fields(text)
	var out []string
	for i, w := range words {
		if !strings.EqualFold(strings.TrimFunc(w, isEdgePunct), keyword) {
			continue
		}
		start := max(0, i-window)
		end := min(len(words), i+window+1)
		out = append(out, strings.Join(words[start:end], " "))
	}
	return out
}

func isEdgePunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
