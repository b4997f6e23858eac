package processor

import (
	"context"

	"github.com/nguyentantai21042004/transcript-flow/internal/action"
	"github.com/nguyentantai21042004/transcript-flow/internal/glossary"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

// Processor turns transcript files into formatted Markdown.
type Processor interface {
	// Process reads one transcript file and writes its outputs.
	Process(ctx context.Context, path string) error
	// Run applies the pipeline to already-read lines without touching the
	// output directory.
	Run(ctx context.Context, lines []string) (*Result, error)
	// Archive moves a processed transcript out of the input folder.
	Archive(ctx context.Context, path string) error
}

// Result is the outcome of one pipeline run.
type Result struct {
	Blocks        []transcript.ParagraphBlock
	Actions       []action.Item
	Summary       string
	Unknowns      glossary.Unknowns
	GrammarReview []string
}
