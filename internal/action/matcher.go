package action

import (
	"fmt"
	"strings"
)

const (
	RuleSource       = "rule_matcher"
	LinguisticSource = "linguistic_matcher"
)

// KeywordMatcher matches case-insensitive substrings. Keywords are tried in
// list order and the first one found is reported.
//
// An occurrence that lies inside an occurrence of one of the shadow phrases
// is ignored, so "we'll" inside the softer "we'll talk" does not count.
type KeywordMatcher struct {
	tier     Tier
	label    string
	keywords []string
	shadows  []string
}

// NewKeywordMatcher builds a matcher for one tier.
func NewKeywordMatcher(tier Tier, label string, keywords []string, shadows []string) *KeywordMatcher {
	return &KeywordMatcher{
		tier:     tier,
		label:    label,
		keywords: lowerAll(keywords),
		shadows:  lowerAll(shadows),
	}
}

// NewRuleMatchers returns the HIGH then LOW keyword matchers. LOW phrases
// shadow the HIGH keywords they contain.
func NewRuleMatchers(high, low []string) []Matcher {
	return []Matcher{
		NewKeywordMatcher(TierHigh, "hard", high, low),
		NewKeywordMatcher(TierLow, "soft", low, nil),
	}
}

func (m *KeywordMatcher) Match(text string) (Match, bool) {
	lowered := foldText(text)
	for _, kw := range m.keywords {
		if kw == "" {
			continue
		}
		if m.contains(lowered, kw) {
			return Match{
				Source:  fmt.Sprintf("%s [%s]", RuleSource, m.tier),
				Tier:    m.tier,
				Keyword: kw,
				Reason:  fmt.Sprintf("Matched %s keyword: %s", m.label, kw),
			}, true
		}
	}
	return Match{}, false
}

func (m *KeywordMatcher) contains(text, kw string) bool {
	if len(m.shadows) == 0 {
		return strings.Contains(text, kw)
	}
	shadowed := m.shadowedSpans(text)
	for from := 0; ; {
		i := strings.Index(text[from:], kw)
		if i < 0 {
			return false
		}
		start := from + i
		if !covered(shadowed, start, start+len(kw)) {
			return true
		}
		from = start + 1
	}
}

type span struct{ start, end int }

func (m *KeywordMatcher) shadowedSpans(text string) []span {
	var spans []span
	for _, s := range m.shadows {
		if s == "" {
			continue
		}
		for from := 0; ; {
			i := strings.Index(text[from:], s)
			if i < 0 {
				break
			}
			start := from + i
			spans = append(spans, span{start, start + len(s)})
			from = start + 1
		}
	}
	return spans
}

func covered(spans []span, start, end int) bool {
	for _, s := range spans {
		if s.start <= start && end <= s.end {
			return true
		}
	}
	return false
}

// LinguisticMatcher is the slot for a parser-backed matcher. It never
// matches yet.
type LinguisticMatcher struct{}

func (LinguisticMatcher) Match(string) (Match, bool) {
	return Match{}, false
}

// foldText lowercases text and straightens typographic apostrophes so that
// "I’ll" matches "i'll".
func foldText(s string) string {
	return strings.ToLower(strings.NewReplacer("’", "'", "‘", "'").Replace(s))
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, foldText(strings.TrimSpace(s)))
	}
	return out
}
