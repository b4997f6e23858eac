package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/processor"
	"github.com/spf13/cobra"
)

type formatOptions struct {
	outputDir    string
	withSummary  bool
	glossary     bool
	grammarCheck bool
	autofix      bool
	debugActions bool
	docx         bool
}

func formatCmd(configPath *string) *cobra.Command {
	var opts formatOptions

	cmd := &cobra.Command{
		Use:   "format FILE...",
		Short: "Format one or more transcripts into Markdown",
		Long: `Format transcripts into Markdown with speaker-grouped paragraphs.

Example:
  transcript-flow format meeting_GMT20240312.vtt
  transcript-flow format notes.txt --with-summary --substitute-glossary --output-dir out`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			opts.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid options: %w", err)
			}

			ctx := cmd.Context()
			log := logger.New(cfg.Logging.Level)
			proc := processor.New(cfg, newDependencies(cfg, log), log)

			return formatFiles(ctx, proc, log, args)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Directory for formatted output (default from config)")
	cmd.Flags().BoolVar(&opts.withSummary, "with-summary", false, "Add a summary and action items")
	cmd.Flags().BoolVar(&opts.glossary, "substitute-glossary", false, "Apply glossary substitutions and log unknown acronyms")
	cmd.Flags().BoolVar(&opts.grammarCheck, "grammar-check", false, "Check grammar and write a review log")
	cmd.Flags().BoolVar(&opts.autofix, "autofix", false, "Normalize whitespace in paragraphs")
	cmd.Flags().BoolVar(&opts.debugActions, "debug-actions", false, "Log every action item match")
	cmd.Flags().BoolVar(&opts.docx, "docx", false, "Also write a DOCX copy")
	return cmd
}

// apply overlays explicitly set flags on the loaded config.
func (o formatOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		cfg.Paths.Output = o.outputDir
	}
	if flags.Changed("with-summary") {
		cfg.Summary.Enabled = o.withSummary
	}
	if flags.Changed("substitute-glossary") {
		cfg.Glossary.Enabled = o.glossary
	}
	if flags.Changed("grammar-check") {
		cfg.Grammar.Enabled = o.grammarCheck
	}
	if flags.Changed("autofix") {
		cfg.Grammar.AutoFix = o.autofix
	}
	if flags.Changed("debug-actions") {
		cfg.Actions.Debug = o.debugActions
	}
	if flags.Changed("docx") {
		cfg.Output.Docx = o.docx
	}
}

// formatFiles processes files one at a time. A failing file does not stop
// the rest; the returned error reports how many failed.
func formatFiles(ctx context.Context, proc processor.Processor, log logger.Logger, files []string) error {
	failed := 0
	for _, f := range files {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := proc.Process(ctx, f); err != nil {
			log.Error(ctx, "Failed to format %s: %v", f, err)
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", f, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d transcripts failed", failed, len(files))
	}
	return nil
}
