package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/render"
)

// Process orchestrates the whole pipeline for one transcript file
func (p *implProcessor) Process(ctx context.Context, path string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting transcript processing: %s", path)
	p.logger.Info(ctx, "========================================")

	// Step 1: Read raw lines
	lines, err := readLines(path)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	// Step 2: Run the pipeline
	res, err := p.Run(ctx, lines)
	if err != nil {
		return fmt.Errorf("run pipeline: %w", err)
	}
	p.logger.Info(ctx, "Found %d speaker blocks, %d action items", len(res.Blocks), len(res.Actions))

	// Step 3: Render and write the transcript
	outputs := p.outputPaths(path)
	doc := render.Document{
		Date:        render.DateFromFilename(path),
		Blocks:      res.Blocks,
		Summary:     res.Summary,
		Actions:     res.Actions,
		WithActions: p.cfg.Summary.Enabled,
	}
	md := render.Markdown(doc)
	if err := p.writeFile(ctx, outputs.markdown, md); err != nil {
		return err
	}

	// Step 4: Optional DOCX copy
	if p.cfg.Output.Docx {
		if err := render.WriteDocx(outputs.title, md, outputs.docx); err != nil {
			p.logger.Warn(ctx, "Failed to write DOCX %s: %v", outputs.docx, err)
		} else {
			p.logger.Info(ctx, "Saved DOCX to: %s", outputs.docx)
		}
	}

	// Step 5: Glossary review material, merged once per run
	if p.store != nil && !res.Unknowns.Empty() {
		if err := p.store.Record(res.Unknowns); err != nil {
			p.logger.Warn(ctx, "Failed to record unknown acronyms: %v", err)
		} else {
			p.logger.Info(ctx, "Saved acronym review log to: %s", p.store.SuggestionsPath)
		}
	}

	// Step 6: Grammar review log
	if len(res.GrammarReview) > 0 {
		if err := p.writeFile(ctx, outputs.grammarReview, strings.Join(res.GrammarReview, "\n")+"\n"); err != nil {
			p.logger.Warn(ctx, "Failed to write grammar review: %v", err)
		}
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Output transcript: %s", outputs.markdown)
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.TrimPrefix(string(data), "\ufeff")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

type outputPaths struct {
	title         string
	markdown      string
	docx          string
	grammarReview string
}

func (p *implProcessor) outputPaths(inputPath string) outputPaths {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	prefix := filepath.Join(p.cfg.Paths.Output, stem+".formatted")
	return outputPaths{
		title:         stem,
		markdown:      prefix + ".md",
		docx:          prefix + ".docx",
		grammarReview: prefix + "_grammar_review.txt",
	}
}
