package glossary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSubstitute(t *testing.T) {
	g := Glossary{
		"k eights":         "Kubernetes",
		"k eights cluster": "Kubernetes cluster",
		"cie":              "CI",
	}
	ignore := IgnoreSet{"OK": true}

	tests := []struct {
		name       string
		in         string
		want       string
		wantCounts map[string]int
	}{
		{
			name:       "case insensitive word boundary replacement",
			in:         "The CIE job broke. Cie means build.",
			want:       "The CI job broke. CI means build.",
			wantCounts: map[string]int{},
		},
		{
			name:       "longer term first",
			in:         "Move it to the K eights cluster.",
			want:       "Move it to the Kubernetes cluster.",
			wantCounts: map[string]int{},
		},
		{
			name:       "no partial word replacement",
			in:         "The species was odd.",
			want:       "The species was odd.",
			wantCounts: map[string]int{},
		},
		{
			name:       "unknown acronyms counted, ignored and known skipped",
			in:         "The SLA and the SLA again, OK, CI is fine, PRD pending.",
			want:       "The SLA and the SLA again, OK, CI is fine, PRD pending.",
			wantCounts: map[string]int{"SLA": 2, "PRD": 1},
		},
		{
			name:       "tokens longer than five letters are not acronyms",
			in:         "ABCDEF is loud.",
			want:       "ABCDEF is loud.",
			wantCounts: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unknowns := Substitute(tt.in, g, ignore)
			if got != tt.want {
				t.Errorf("Substitute() text = %q, want %q", got, tt.want)
			}
			if diff := cmp.Diff(tt.wantCounts, unknowns.Counts); diff != "" {
				t.Errorf("Substitute() counts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSubstituteContexts(t *testing.T) {
	text := "one two three four five six SLA, seven eight nine ten eleven twelve SLA end"
	_, u := Substitute(text, nil, nil)

	want := []string{
		"two three four five six SLA, seven eight nine ten eleven",
		"eight nine ten eleven twelve SLA end",
	}
	if diff := cmp.Diff(want, u.Contexts["SLA"]); diff != "" {
		t.Errorf("contexts mismatch (-want +got):\n%s", diff)
	}
	if u.Counts["SLA"] != 2 {
		t.Errorf("count = %d, want 2", u.Counts["SLA"])
	}
}

func TestSubstituteIsPure(t *testing.T) {
	s := NewSubstituter(Glossary{"foo": "bar"}, nil)
	_, first := s.Substitute("ABC here")
	_, second := s.Substitute("XYZ there")

	if _, leaked := second.Counts["ABC"]; leaked {
		t.Error("unknowns leaked between calls")
	}
	if first.Counts["ABC"] != 1 || second.Counts["XYZ"] != 1 {
		t.Errorf("unexpected counts: %v %v", first.Counts, second.Counts)
	}
}

func TestUnknownsMerge(t *testing.T) {
	total := NewUnknowns()
	_, a := Substitute("The SLA is late.", nil, nil)
	_, b := Substitute("Another SLA and a PRD.", nil, nil)
	total.Merge(a)
	total.Merge(b)

	if diff := cmp.Diff(map[string]int{"SLA": 2, "PRD": 1}, total.Counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
	if n := len(total.Contexts["SLA"]); n != 2 {
		t.Errorf("SLA contexts = %d, want 2", n)
	}
	if diff := cmp.Diff([]string{"PRD", "SLA"}, total.Terms()); diff != "" {
		t.Errorf("Terms() mismatch (-want +got):\n%s", diff)
	}
	if total.Empty() || !NewUnknowns().Empty() {
		t.Error("Empty() wrong")
	}
}
