package processor

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/action"
	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/glossary"
	"github.com/nguyentantai21042004/transcript-flow/internal/grammar"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/summarizer"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

// Dependencies are the collaborators a Processor calls. Nil entries disable
// the matching step.
type Dependencies struct {
	Glossary   *glossary.Store
	Checker    grammar.Checker
	Summarizer summarizer.Summarizer
}

type implProcessor struct {
	cfg        *config.Config
	logger     logger.Logger
	splitter   *transcript.Splitter
	extractor  action.Extractor
	store      *glossary.Store
	checker    grammar.Checker
	summarizer summarizer.Summarizer
}

// New creates a new Processor instance
func New(cfg *config.Config, deps Dependencies, log logger.Logger) Processor {
	seg := cfg.Segmentation
	return &implProcessor{
		cfg:        cfg,
		logger:     log,
		splitter:   transcript.NewSplitter(seg.MaxSentences, seg.MaxChars, seg.TopicMarkers),
		extractor:  action.NewDefault(cfg.Actions.HighKeywords, cfg.Actions.LowKeywords, log, cfg.Actions.Debug),
		store:      deps.Glossary,
		checker:    deps.Checker,
		summarizer: deps.Summarizer,
	}
}
