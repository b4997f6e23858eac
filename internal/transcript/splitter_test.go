package transcript

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var defaultMarkers = []string{
	"Next", "On another note", "That said", "One more thing", "Anyway", "So, the other thing",
}

func newDefaultSplitter() *Splitter {
	return NewSplitter(4, 300, defaultMarkers)
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", " \t ", nil},
		{"single sentence", "Just one.", []string{"Just one."}},
		{
			name: "all terminators",
			in:   "Ready? Yes! Go now.",
			want: []string{"Ready?", "Yes!", "Go now."},
		},
		{
			name: "lowercase continuation does not split",
			in:   "We met at 3 p.m. and then left. Done.",
			want: []string{"We met at 3 p.m. and then left.", "Done."},
		},
		{
			name: "abbreviation before capital splits",
			in:   "Ask Dr. Smith today.",
			want: []string{"Ask Dr.", "Smith today."},
		},
		{
			name: "no whitespace after terminator",
			in:   "See v1.2.Then stop.",
			want: []string{"See v1.2.Then stop."},
		},
		{
			name: "irregular whitespace between sentences",
			in:   "First.\t  Second.\n\nThird.",
			want: []string{"First.", "Second.", "Third."},
		},
		{
			name: "trailing text without terminator",
			in:   "One. two three",
			want: []string{"One. two three"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitSentences() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	long := strings.Repeat("word ", 70) // 350 characters
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "five short sentences split four and one",
			in:   "One. Two. Three. Four. Five.",
			want: []string{"One. Two. Three. Four.", "Five."},
		},
		{
			name: "fewer than four sentences stay together",
			in:   "We shipped. It works. Good job.",
			want: []string{"We shipped. It works. Good job."},
		},
		{
			name: "topic marker closes the paragraph after its sentence",
			in:   "Budget is fine. That said, hiring is slow. We need two people.",
			want: []string{"Budget is fine. That said, hiring is slow.", "We need two people."},
		},
		{
			name: "marker match is case sensitive",
			in:   "We go next. Then we rest.",
			want: []string{"We go next. Then we rest."},
		},
		{
			name: "marker in the first sentence",
			in:   "Next item is the roadmap. It slipped.",
			want: []string{"Next item is the roadmap.", "It slipped."},
		},
		{
			name: "long sentence closes immediately",
			in:   "A " + long + "end. Short one.",
			want: []string{strings.TrimSpace("A " + long + "end."), "Short one."},
		},
	}

	s := newDefaultSplitter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Split(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitCharacterBudget(t *testing.T) {
	// Three sentences of 110 characters reach 300 on the third.
	sentence := strings.Repeat("a", 109) + "."
	text := strings.Join([]string{"A" + sentence[1:], "B" + sentence[1:], "C" + sentence[1:], "D" + sentence[1:]}, " ")

	got := newDefaultSplitter().Split(text)
	if len(got) != 2 {
		t.Fatalf("Split() returned %d paragraphs, want 2: %q", len(got), got)
	}
	if n := len(SplitSentences(got[0])); n != 3 {
		t.Errorf("first paragraph has %d sentences, want 3", n)
	}
}

func TestSplitReconstructs(t *testing.T) {
	text := "Okay so first.  The numbers look good!   Anyway, moving on. " +
		"Did the vendor reply? Not yet. We'll chase them. One more thing, the offsite. " +
		"It is in May. Hotels are booked. Flights are not. Any questions?"

	paragraphs := newDefaultSplitter().Split(text)
	if len(paragraphs) < 2 {
		t.Fatalf("expected several paragraphs, got %q", paragraphs)
	}
	for i, p := range paragraphs {
		if p == "" || p != strings.TrimSpace(p) {
			t.Errorf("paragraph %d is empty or untrimmed: %q", i, p)
		}
	}

	joined := strings.Fields(strings.Join(paragraphs, " "))
	if diff := cmp.Diff(strings.Fields(text), joined); diff != "" {
		t.Errorf("paragraphs do not reconstruct the text (-want +got):\n%s", diff)
	}
}

func TestSplitBlock(t *testing.T) {
	b := SpeakerBlock{Speaker: "Alice", Lines: []string{"One. Two.", "Three. Four. Five."}}
	got := newDefaultSplitter().SplitBlock(b)
	want := ParagraphBlock{Speaker: "Alice", Paragraphs: []string{"One. Two. Three. Four.", "Five."}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SplitBlock() mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitDisabledLimits(t *testing.T) {
	s := NewSplitter(0, 0, nil)
	got := s.Split("One. Two. Three. Four. Five. Six.")
	if len(got) != 1 {
		t.Errorf("Split() = %q, want a single paragraph", got)
	}
}

func TestSpeakers(t *testing.T) {
	blocks := []ParagraphBlock{{Speaker: "Bob"}, {Speaker: "Alice"}, {Speaker: "Bob"}}
	if diff := cmp.Diff([]string{"Bob", "Alice"}, Speakers(blocks)); diff != "" {
		t.Errorf("Speakers() mismatch (-want +got):\n%s", diff)
	}
}
