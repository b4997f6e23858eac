package glossary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return NewStore(
		filepath.Join(dir, "glossary.json"),
		filepath.Join(dir, "ignore_acronyms.json"),
		filepath.Join(dir, "glossary_suggestions.txt"),
		filepath.Join(dir, "acronym_stats.json"),
	)
}

func TestStoreMissingFiles(t *testing.T) {
	s := newTestStore(t)

	g, err := s.LoadGlossary()
	if err != nil || len(g) != 0 {
		t.Errorf("LoadGlossary() = %v, %v", g, err)
	}
	ign, err := s.LoadIgnored()
	if err != nil || len(ign) != 0 {
		t.Errorf("LoadIgnored() = %v, %v", ign, err)
	}
	stats, err := s.LoadStats()
	if err != nil || len(stats) != 0 {
		t.Errorf("LoadStats() = %v, %v", stats, err)
	}
}

func TestStoreMalformedGlossary(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.GlossaryPath, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadGlossary(); err == nil {
		t.Error("LoadGlossary() should fail on malformed JSON")
	}
}

func TestStoreRecord(t *testing.T) {
	s := newTestStore(t)

	u := NewUnknowns()
	_, a := Substitute("The SLA slipped.", nil, nil)
	u.Merge(a)
	if err := s.Record(u); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := s.Record(u); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats["SLA"] != 2 {
		t.Errorf("stats[SLA] = %d, want 2", stats["SLA"])
	}

	data, err := os.ReadFile(s.SuggestionsPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), `  - SLA → "The SLA slipped."`); got != 2 {
		t.Errorf("suggestions log has %d entries, want 2:\n%s", got, data)
	}
}

func TestStoreRecordEmptyIsNoop(t *testing.T) {
	s := newTestStore(t)
	if err := s.Record(NewUnknowns()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(s.SuggestionsPath); !os.IsNotExist(err) {
		t.Error("suggestions log created for an empty run")
	}
}

func TestStoreManagement(t *testing.T) {
	s := newTestStore(t)

	if err := os.WriteFile(s.GlossaryPath, []byte(`{"zeta": "Z", "alpha": "A"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := s.Sort(); err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	data, _ := os.ReadFile(s.GlossaryPath)
	if strings.Index(string(data), "alpha") > strings.Index(string(data), "zeta") {
		t.Errorf("glossary not sorted:\n%s", data)
	}

	if err := s.Promote("SLA", "service level agreement"); err != nil {
		t.Fatalf("Promote() error = %v", err)
	}
	if err := s.Promote("", "x"); err == nil {
		t.Error("Promote() accepted an empty term")
	}
	if err := s.Ignore("OK"); err != nil {
		t.Fatalf("Ignore() error = %v", err)
	}
	if err := s.Ignore("  "); err == nil {
		t.Error("Ignore() accepted an empty term")
	}

	u := NewUnknowns()
	u.Counts = map[string]int{"SLA": 9, "OK": 7, "PRD": 3, "API": 3, "QBR": 5}
	if err := s.Record(u); err != nil {
		t.Fatal(err)
	}

	got, err := s.Suggestions()
	if err != nil {
		t.Fatalf("Suggestions() error = %v", err)
	}
	want := []Suggestion{{"QBR", 5}, {"API", 3}, {"PRD", 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Suggestions() mismatch (-want +got):\n%s", diff)
	}

	g, _ := s.LoadGlossary()
	if g["SLA"] != "service level agreement" || g["alpha"] != "A" {
		t.Errorf("glossary = %v", g)
	}
}
