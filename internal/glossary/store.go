package glossary

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// Store reads and writes the glossary files. Writes are serialised so that
// concurrent transcript runs can record their unknowns safely.
type Store struct {
	GlossaryPath    string
	IgnorePath      string
	SuggestionsPath string
	StatsPath       string

	mu sync.Mutex
}

// NewStore returns a Store over the given files.
func NewStore(glossaryPath, ignorePath, suggestionsPath, statsPath string) *Store {
	return &Store{
		GlossaryPath:    glossaryPath,
		IgnorePath:      ignorePath,
		SuggestionsPath: suggestionsPath,
		StatsPath:       statsPath,
	}
}

// LoadGlossary reads the glossary. A missing file yields an empty glossary.
func (s *Store) LoadGlossary() (Glossary, error) {
	g := Glossary{}
	if err := readJSON(s.GlossaryPath, &g); err != nil {
		return nil, fmt.Errorf("load glossary: %w", err)
	}
	return g, nil
}

// LoadIgnored reads the ignore list. A missing file yields an empty set.
func (s *Store) LoadIgnored() (IgnoreSet, error) {
	var terms []string
	if err := readJSON(s.IgnorePath, &terms); err != nil {
		return nil, fmt.Errorf("load ignore list: %w", err)
	}
	set := make(IgnoreSet, len(terms))
	for _, t := range terms {
		set[t] = true
	}
	return set, nil
}

// LoadStats reads acronym occurrence counts.
func (s *Store) LoadStats() (map[string]int, error) {
	stats := map[string]int{}
	if err := readJSON(s.StatsPath, &stats); err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	return stats, nil
}

// Record appends the unknowns of one run to the suggestions log and adds
// their counts to the stats file.
func (s *Store) Record(u Unknowns) error {
	if u.Empty() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.appendSuggestions(u); err != nil {
		return err
	}

	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	for term, n := range u.Counts {
		stats[term] += n
	}
	if err := writeJSON(s.StatsPath, stats); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}

func (s *Store) appendSuggestions(u Unknowns) error {
	f, err := os.OpenFile(s.SuggestionsPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open suggestions log: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for _, term := range u.Terms() {
		for _, c := range u.Contexts[term] {
			fmt.Fprintf(&b, "  - %s → \"%s\"\n", term, strings.TrimSpace(c))
		}
	}
	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("write suggestions log: %w", err)
	}
	return nil
}

// Sort rewrites the glossary with sorted keys.
func (s *Store) Sort() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.LoadGlossary()
	if err != nil {
		return err
	}
	return s.saveGlossary(g)
}

// Promote adds term to the glossary.
func (s *Store) Promote(term, replacement string) error {
	term, replacement = strings.TrimSpace(term), strings.TrimSpace(replacement)
	if term == "" || replacement == "" {
		return errors.New("term and replacement are required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.LoadGlossary()
	if err != nil {
		return err
	}
	g[term] = replacement
	return s.saveGlossary(g)
}

// Ignore adds term to the ignore list.
func (s *Store) Ignore(term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return errors.New("term is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.LoadIgnored()
	if err != nil {
		return err
	}
	set[term] = true

	terms := make([]string, 0, len(set))
	for t := range set {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	if err := writeJSON(s.IgnorePath, terms); err != nil {
		return fmt.Errorf("save ignore list: %w", err)
	}
	return nil
}

// Suggestion is an unknown acronym awaiting review.
type Suggestion struct {
	Term  string
	Count int
}

// Suggestions lists stats terms that are neither in the glossary nor
// ignored, most frequent first.
func (s *Store) Suggestions() ([]Suggestion, error) {
	stats, err := s.LoadStats()
	if err != nil {
		return nil, err
	}
	g, err := s.LoadGlossary()
	if err != nil {
		return nil, err
	}
	ignored, err := s.LoadIgnored()
	if err != nil {
		return nil, err
	}

	var out []Suggestion
	for term, n := range stats {
		if _, known := g[term]; known || ignored[term] {
			continue
		}
		out = append(out, Suggestion{Term: term, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Term < out[j].Term
	})
	return out, nil
}

func (s *Store) saveGlossary(g Glossary) error {
	// encoding/json writes map keys sorted.
	if err := writeJSON(s.GlossaryPath, g); err != nil {
		return fmt.Errorf("save glossary: %w", err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
