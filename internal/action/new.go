package action

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type implExtractor struct {
	matchers []Matcher
	logger   logger.Logger
	debug    bool
}

// New creates an Extractor trying matchers in order. With debug set every
// accepted match is traced through log.
func New(matchers []Matcher, log logger.Logger, debug bool) Extractor {
	if log == nil {
		log = logger.Nop()
	}
	return &implExtractor{
		matchers: matchers,
		logger:   log,
		debug:    debug,
	}
}

// NewDefault creates the standard chain: hard keywords, soft keywords, then
// the linguistic slot.
func NewDefault(high, low []string, log logger.Logger, debug bool) Extractor {
	matchers := append(NewRuleMatchers(high, low), LinguisticMatcher{})
	return New(matchers, log, debug)
}
