package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/transcript-flow/internal/action"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

func TestDateFromFilename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"recordings/Weekly sync GMT20240312-150000.vtt", "March 12, 2024"},
		{"GMT20230105.txt", "January 5, 2023"},
		{"notes.txt", "Unknown"},
		{"GMT20241399.txt", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DateFromFilename(tt.path); got != tt.want {
				t.Errorf("DateFromFilename(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

var blocks = []transcript.ParagraphBlock{
	{Speaker: "Bob", Paragraphs: []string{"Morning all.", "Can you send the deck?"}},
	{Speaker: "Alice", Paragraphs: []string{"Sure."}},
}

func TestMarkdownTranscriptOnly(t *testing.T) {
	got := Markdown(Document{Date: "March 12, 2024", Blocks: blocks})
	want := `## Meeting Details
- **Date:** March 12, 2024
- **Attendees:** Alice, Bob

## Full Transcript

**Bob:**

Morning all.

Can you send the deck?

**Alice:**

Sure.
`
	if got != want {
		t.Errorf("Markdown() =\n%s\nwant\n%s", got, want)
	}
}

func TestMarkdownWithSummaryAndActions(t *testing.T) {
	got := Markdown(Document{
		Blocks:  blocks,
		Summary: "  Deck review.  ",
		Actions: []action.Item{{
			Speaker: "Bob",
			Text:    "Can you send the deck?",
			Tier:    action.TierHigh,
			Reason:  "Matched hard keyword: send",
		}},
	})

	for _, want := range []string{
		"- **Date:** Unknown\n",
		"## Summary\nDeck review.\n\n",
		"## Action Items\n- [ ] **Bob:** Can you send the deck? _(HIGH: Matched hard keyword: send)_\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Markdown() missing %q in:\n%s", want, got)
		}
	}
	if strings.Index(got, "## Action Items") > strings.Index(got, "## Full Transcript") {
		t.Error("action items must precede the transcript")
	}
}

func TestMarkdownEmptyActionsSection(t *testing.T) {
	got := Markdown(Document{WithActions: true})
	if !strings.Contains(got, "## Action Items\n_No action items detected._\n") {
		t.Errorf("Markdown() = %q", got)
	}
	if !strings.Contains(got, "- **Attendees:** \n") {
		t.Errorf("Markdown() attendees line wrong: %q", got)
	}
}

func TestWriteDocx(t *testing.T) {
	md := Markdown(Document{
		Date:   "March 12, 2024",
		Blocks: blocks,
		Actions: []action.Item{{
			Speaker: "Bob", Text: "Can you send the deck?", Tier: action.TierHigh, Reason: "Matched hard keyword: send",
		}},
	})

	out := filepath.Join(t.TempDir(), "meeting.docx")
	if err := WriteDocx("Weekly sync", md, out); err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("WriteDocx() wrote an empty file")
	}
}

func TestCleanMarkdownInline(t *testing.T) {
	got := cleanMarkdownInline("`code` and __under__ _(HIGH: reason)_")
	if got != "code and under (HIGH: reason)" {
		t.Errorf("cleanMarkdownInline() = %q", got)
	}
}
