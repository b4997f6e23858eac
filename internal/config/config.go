package config

import (
	"fmt"
	"time"
)

type Config struct {
	Paths        PathsConfig        `yaml:"paths"`
	Logging      LoggingConfig      `yaml:"logging"`
	Performance  PerformanceConfig  `yaml:"performance"`
	Segmentation SegmentationConfig `yaml:"segmentation"`
	Actions      ActionsConfig      `yaml:"actions"`
	Glossary     GlossaryConfig     `yaml:"glossary"`
	Grammar      GrammarConfig      `yaml:"grammar"`
	Summary      SummaryConfig      `yaml:"summary"`
	Output       OutputConfig       `yaml:"output"`
}

type PathsConfig struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Archived    string `yaml:"archived"`
	Glossary    string `yaml:"glossary"`
	IgnoreList  string `yaml:"ignore_list"`
	Suggestions string `yaml:"suggestions"`
	Stats       string `yaml:"stats"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// SegmentationConfig holds the paragraph break heuristics. Zero limits take
// the default; a negative limit turns that rule off.
type SegmentationConfig struct {
	MaxSentences int      `yaml:"max_sentences"`
	MaxChars     int      `yaml:"max_chars"`
	TopicMarkers []string `yaml:"topic_markers"`
}

// ActionsConfig holds the keyword tiers. List order is match priority.
type ActionsConfig struct {
	HighKeywords []string `yaml:"high_keywords"`
	LowKeywords  []string `yaml:"low_keywords"`
	Debug        bool     `yaml:"debug"`
}

type GlossaryConfig struct {
	Enabled bool `yaml:"enabled"`
}

type GrammarConfig struct {
	Enabled      bool          `yaml:"enabled"`
	AutoFix      bool          `yaml:"autofix"`
	Backend      string        `yaml:"backend"`
	URL          string        `yaml:"url"`
	Language     string        `yaml:"language"`
	Command      []string      `yaml:"command"`
	Timeout      time.Duration `yaml:"timeout"`
	IgnoredRules []string      `yaml:"ignored_rules"`
}

type SummaryConfig struct {
	Enabled bool     `yaml:"enabled"`
	Backend string   `yaml:"backend"`
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

const (
	GrammarBackendHTTP    = "http"
	GrammarBackendCommand = "command"

	SummaryBackendPlaceholder = "placeholder"
	SummaryBackendGemini      = "gemini"
)

var (
	DefaultTopicMarkers = []string{
		"Next", "On another note", "That said", "One more thing", "Anyway", "So, the other thing",
	}
	DefaultHighKeywords = []string{
		"follow up", "confirm", "send", "reach out", "get back", "ask about",
		"circle back", "make sure", "i'll", "we'll", "can you", "need to",
	}
	DefaultLowKeywords = []string{
		"talk soon", "we'll talk", "we'll bug", "check in", "catch up", "see what happens",
	}
	DefaultIgnoredRules = []string{
		"UPPERCASE_SENTENCE_START", "INFORMAL_ENGLISH", "EN_QUOTES", "REDUNDANT_PHRASE",
	}
)

// Validate rejects invalid values and fills defaults for unset ones.
func (c *Config) Validate() error {
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}

	switch c.Grammar.Backend {
	case "":
		c.Grammar.Backend = GrammarBackendHTTP
	case GrammarBackendHTTP:
	case GrammarBackendCommand:
		if c.Grammar.Enabled && len(c.Grammar.Command) == 0 {
			return fmt.Errorf("grammar.command is required for the command backend")
		}
	default:
		return fmt.Errorf("unknown grammar.backend %q", c.Grammar.Backend)
	}

	switch c.Summary.Backend {
	case "":
		c.Summary.Backend = SummaryBackendPlaceholder
	case SummaryBackendPlaceholder:
	case SummaryBackendGemini:
		if c.Summary.Enabled && len(c.Summary.APIKeys) == 0 {
			return fmt.Errorf("summary.api_keys is required for the gemini backend")
		}
	default:
		return fmt.Errorf("unknown summary.backend %q", c.Summary.Backend)
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Glossary == "" {
		c.Paths.Glossary = "glossary.json"
	}
	if c.Paths.IgnoreList == "" {
		c.Paths.IgnoreList = "ignore_acronyms.json"
	}
	if c.Paths.Suggestions == "" {
		c.Paths.Suggestions = "glossary_suggestions.txt"
	}
	if c.Paths.Stats == "" {
		c.Paths.Stats = "acronym_stats.json"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Segmentation.MaxSentences == 0 {
		c.Segmentation.MaxSentences = 4
	}
	if c.Segmentation.MaxChars == 0 {
		c.Segmentation.MaxChars = 300
	}
	if c.Segmentation.TopicMarkers == nil {
		c.Segmentation.TopicMarkers = append([]string(nil), DefaultTopicMarkers...)
	}
	if c.Actions.HighKeywords == nil {
		c.Actions.HighKeywords = append([]string(nil), DefaultHighKeywords...)
	}
	if c.Actions.LowKeywords == nil {
		c.Actions.LowKeywords = append([]string(nil), DefaultLowKeywords...)
	}
	if c.Grammar.URL == "" {
		c.Grammar.URL = "http://localhost:8081"
	}
	if c.Grammar.Language == "" {
		c.Grammar.Language = "en-US"
	}
	if c.Grammar.Timeout == 0 {
		c.Grammar.Timeout = 30 * time.Second
	}
	if c.Grammar.IgnoredRules == nil {
		c.Grammar.IgnoredRules = append([]string(nil), DefaultIgnoredRules...)
	}
	if c.Summary.Model == "" {
		c.Summary.Model = "gemini-2.5-flash"
	}

	return nil
}
