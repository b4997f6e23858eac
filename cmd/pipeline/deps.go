package main

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/glossary"
	"github.com/nguyentantai21042004/transcript-flow/internal/grammar"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/processor"
	"github.com/nguyentantai21042004/transcript-flow/internal/summarizer"
	"github.com/nguyentantai21042004/transcript-flow/pkg/executor"
)

func newStore(cfg *config.Config) *glossary.Store {
	p := cfg.Paths
	return glossary.NewStore(p.Glossary, p.IgnoreList, p.Suggestions, p.Stats)
}

// newDependencies builds the processor collaborators selected by cfg.
func newDependencies(cfg *config.Config, log logger.Logger) processor.Dependencies {
	deps := processor.Dependencies{Glossary: newStore(cfg)}

	if cfg.Grammar.Enabled {
		g := cfg.Grammar
		switch g.Backend {
		case config.GrammarBackendCommand:
			deps.Checker = grammar.NewCommandChecker(executor.New(), g.Command, g.Language, g.IgnoredRules)
		default:
			deps.Checker = grammar.NewHTTPChecker(g.URL, g.Language, g.IgnoredRules, g.Timeout)
		}
	}

	if cfg.Summary.Enabled {
		switch cfg.Summary.Backend {
		case config.SummaryBackendGemini:
			deps.Summarizer = summarizer.NewGemini(cfg.Summary.APIKeys, cfg.Summary.Model, log)
		default:
			deps.Summarizer = summarizer.NewPlaceholder()
		}
	}

	return deps
}
